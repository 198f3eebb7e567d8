package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const quizCachePrefix = "quiz:detail:"

// QuizCache 管理端测验详情缓存；Redis 未启用时所有操作为空操作
type QuizCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

// QuizCacheInvalidator 作答数变化后清除测验详情缓存
type QuizCacheInvalidator interface {
	Invalidate(ctx context.Context, id string)
}

func NewQuizCache(rdb *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{Redis: rdb, TTL: ttl}
}

func (c *QuizCache) enabled() bool {
	return c != nil && c.Redis != nil
}

func (c *QuizCache) Get(ctx context.Context, id string) (*model.Quiz, bool) {
	if !c.enabled() {
		return nil, false
	}

	val, err := c.Redis.Get(ctx, quizCachePrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("Quiz cache read failed", zap.String("quizId", id), zap.Error(err))
		}
		return nil, false
	}

	var quiz model.Quiz
	if err := json.Unmarshal(val, &quiz); err != nil {
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &quiz, true
}

func (c *QuizCache) Set(ctx context.Context, quiz *model.Quiz) {
	if !c.enabled() || quiz == nil {
		return
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, quizCachePrefix+quiz.ID, data, c.TTL).Err(); err != nil {
		logger.Log.Warn("Quiz cache write failed", zap.String("quizId", quiz.ID), zap.Error(err))
	}
}

func (c *QuizCache) Invalidate(ctx context.Context, id string) {
	if !c.enabled() {
		return
	}
	if err := c.Redis.Del(ctx, quizCachePrefix+id).Err(); err != nil {
		logger.Log.Warn("Quiz cache invalidation failed", zap.String("quizId", id), zap.Error(err))
	}
}
