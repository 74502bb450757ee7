package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOperationJSON(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "type", Value: "Transfer"}, {Key: "amount", Value: "100"}})
	require.NoError(t, err)

	out, err := OperationJSON(raw)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Transfer","amount":"100"}`, string(out))
}

func TestOperationJSON_givenEmptyDocument(t *testing.T) {
	out, err := OperationJSON(nil)
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}
