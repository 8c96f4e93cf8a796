package modlog

import (
	"context"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockMongoColl := NewMockIMongoCollection(ctrl)
	mockInsertOneResult := NewMockIMongoInsertOneResult(ctrl)

	log := &Log{actions: mockMongoColl}
	action := &ModAction{Kind: BanUser, ActorID: 1, Target: "/@pike", Reason: "spam", CreatedUTC: 100}

	t.Run("success", func(t *testing.T) {
		mockMongoColl.EXPECT().
			InsertOne(ctx, action).
			Return(mockInsertOneResult, nil)

		assert.NoError(t, log.Record(ctx, action))
	})

	t.Run("insert error", func(t *testing.T) {
		mockMongoColl.EXPECT().
			InsertOne(ctx, gomock.Any()).
			Return(nil, fmt.Errorf("insert_failed"))

		err := log.Record(ctx, action)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ban_user")
	})
}

func TestRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockMongoColl := NewMockIMongoCollection(ctrl)
	mockCursor := NewMockIMongoCursor(ctrl)

	log := &Log{actions: mockMongoColl}

	t.Run("success", func(t *testing.T) {
		expected := []*ModAction{
			{Kind: StickyPost, ActorID: 2, Target: "t2_1a", CreatedUTC: 200},
			{Kind: BanPost, ActorID: 2, Target: "t2_1b", CreatedUTC: 100},
		}

		mockMongoColl.EXPECT().
			Find(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, opts ...*options.FindOptions) (IMongoCursor, error) {
				assert.Len(t, opts, 1)
				assert.Equal(t, int64(10), *opts[0].Limit)
				return mockCursor, nil
			})
		mockCursor.EXPECT().
			All(ctx, gomock.AssignableToTypeOf(&expected)).
			SetArg(1, expected).
			Return(nil)
		mockCursor.EXPECT().Close(ctx).Return(nil)

		actions, err := log.Recent(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, expected, actions)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		mockMongoColl.EXPECT().
			Find(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, opts ...*options.FindOptions) (IMongoCursor, error) {
				assert.Equal(t, int64(MaxLimit), *opts[0].Limit)
				return nil, fmt.Errorf("find_failed")
			})

		_, err := log.Recent(ctx, 5000)
		assert.Error(t, err)
	})
}
