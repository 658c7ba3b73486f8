package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/logging"
)

type CacheTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	cache Cache
}

func (s *CacheTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	client := NewClientWithRedis(db, logging.NewNopLogger())
	s.cache = NewRedisCache(client, logging.NewNopLogger(), WithPrefix("test:"))
}

func (s *CacheTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

type cachedRecord struct {
	Drug     string   `json:"drug"`
	Synonyms []string `json:"synonyms"`
}

func (s *CacheTestSuite) TestGet_Hit() {
	want := cachedRecord{Drug: "Aspirin", Synonyms: []string{"Ecotrin"}}
	data, err := json.Marshal(want)
	require.NoError(s.T(), err)

	s.mock.ExpectGet("test:search:aspirin").SetVal(string(data))

	var got cachedRecord
	found, err := s.cache.Get(context.Background(), "search:aspirin", &got)
	require.NoError(s.T(), err)
	assert.True(s.T(), found)
	assert.Equal(s.T(), want, got)
}

func (s *CacheTestSuite) TestGet_MissIsNotAnError() {
	s.mock.ExpectGet("test:search:unknown").RedisNil()

	var got cachedRecord
	found, err := s.cache.Get(context.Background(), "search:unknown", &got)
	assert.NoError(s.T(), err)
	assert.False(s.T(), found)
}

func (s *CacheTestSuite) TestSet_UsesDefaultTTLWhenZero() {
	want := cachedRecord{Drug: "Metformin"}
	data, err := json.Marshal(want)
	require.NoError(s.T(), err)

	s.mock.ExpectSet("test:search:metformin", data, 15*time.Minute).SetVal("OK")

	err = s.cache.Set(context.Background(), "search:metformin", want, 0)
	require.NoError(s.T(), err)
}

func (s *CacheTestSuite) TestSet_ExplicitTTL() {
	data, err := json.Marshal("pong")
	require.NoError(s.T(), err)

	s.mock.ExpectSet("test:health", data, time.Minute).SetVal("OK")

	err = s.cache.Set(context.Background(), "health", "pong", time.Minute)
	require.NoError(s.T(), err)
}

func (s *CacheTestSuite) TestDelete() {
	s.mock.ExpectDel("test:a", "test:b").SetVal(2)

	err := s.cache.Delete(context.Background(), "a", "b")
	require.NoError(s.T(), err)
}

func (s *CacheTestSuite) TestDelete_NoKeysIsNoop() {
	err := s.cache.Delete(context.Background())
	require.NoError(s.T(), err)
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
