package modlog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "modactions"

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

type Kind string

const (
	BanUser              Kind = "ban_user"
	UnbanUser            Kind = "unban_user"
	BanPost              Kind = "ban_post"
	UnbanPost            Kind = "unban_post"
	DistinguishPost      Kind = "distinguish"
	StickyPost           Kind = "sticky"
	UnstickyPost         Kind = "unsticky"
	BanComment           Kind = "ban_comment"
	UnbanComment         Kind = "unban_comment"
	DistinguishComment   Kind = "distinguish_comment"
	UndistinguishComment Kind = "undistinguish_comment"
	BanGuild             Kind = "ban_guild"
	UnbanGuild           Kind = "unban_guild"
	ModSelf              Kind = "mod_self"
)

// ModAction is one audit entry. Target is the fullname or URL of the
// moderated entity.
type ModAction struct {
	Kind       Kind   `json:"kind" bson:"kind"`
	ActorID    int64  `json:"actor_id" bson:"actor_id"`
	Target     string `json:"target" bson:"target"`
	Reason     string `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedUTC int64  `json:"created_utc" bson:"created_utc"`
}

type Log struct {
	actions IMongoCollection
}

func NewModLog(actionsCol *mongo.Collection) *Log {
	return &Log{
		actions: &MongoCollection{Coll: actionsCol},
	}
}

func (l *Log) Record(ctx context.Context, a *ModAction) error {
	if _, err := l.actions.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("modlog: failed inserting %s: %w", a.Kind, err)
	}
	return nil
}

// Recent returns the newest entries first. The limit is clamped to
// 1..MaxLimit.
func (l *Log) Recent(ctx context.Context, limit int64) ([]*ModAction, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_utc", Value: -1}}).SetLimit(limit)
	cursor, err := l.actions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("modlog: failed finding actions: %w", err)
	}
	defer cursor.Close(ctx)

	actions := []*ModAction{}
	if err := cursor.All(ctx, &actions); err != nil {
		return nil, fmt.Errorf("modlog: failed reading actions from cursor: %w", err)
	}
	return actions, nil
}
