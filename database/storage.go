package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Storage is a request-scoped view of the database. All reads issued through
// it run inside the same causally consistent session.
type Storage struct {
	session mongo.Session
	db      *mongo.Database
}

// Close ends the underlying session. Safe to call more than once.
func (s *Storage) Close(ctx context.Context) {
	if s.session == nil {
		return
	}
	s.session.EndSession(ctx)
	s.session = nil
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Storage) sessionContext(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.session)
}
