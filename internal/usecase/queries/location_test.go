//go:build unit

package queries_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/usecase/queries"
	queriesmock "gongsil-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type locationMocks struct {
	searcher *queriesmock.MockLocalSearcher
	geocoder *queriesmock.MockReverseGeocoder
	cache    *queriesmock.MockCache
}

func newLocationQueries(t *testing.T) (locationMocks, queries.LocationQueries) {
	ctrl := gomock.NewController(t)
	m := locationMocks{
		searcher: queriesmock.NewMockLocalSearcher(ctrl),
		geocoder: queriesmock.NewMockReverseGeocoder(ctrl),
		cache:    queriesmock.NewMockCache(ctrl),
	}
	return m, queries.NewLocationQueries(m.searcher, m.geocoder, m.cache, config.NewTestConfig(), discardLogger())
}

func TestSearchLocal(t *testing.T) {
	ctx := context.Background()
	ok := &queries.Passthrough{Status: http.StatusOK, ContentType: "application/json", Body: []byte(`{"items":[]}`)}

	t.Run("miss relays and caches 200 answers", func(t *testing.T) {
		m, q := newLocationQueries(t)
		params := queries.LocalSearchParams{Query: "성수 카페", Display: "5"}

		var storedKey string
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrCacheMiss)
		m.searcher.EXPECT().SearchLocal(gomock.Any(), params).Return(ok, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), ok, gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any, _ any) error {
				storedKey = key
				return nil
			})

		got, err := q.SearchLocal(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, ok, got)
		assert.Contains(t, storedKey, "gongsil-test:local-search:")
	})

	t.Run("queries differing in case and spacing share a key", func(t *testing.T) {
		m, q := newLocationQueries(t)

		var keys []string
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any) error {
				keys = append(keys, key)
				return errs.ErrCacheMiss
			}).Times(2)
		m.searcher.EXPECT().SearchLocal(gomock.Any(), gomock.Any()).Return(ok, nil).Times(2)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		_, err := q.SearchLocal(ctx, queries.LocalSearchParams{Query: "  Seongsu   Cafe "})
		require.NoError(t, err)
		_, err = q.SearchLocal(ctx, queries.LocalSearchParams{Query: "seongsu cafe"})
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.Equal(t, keys[0], keys[1])
	})

	t.Run("hit skips Naver", func(t *testing.T) {
		m, q := newLocationQueries(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*queries.Passthrough) = *ok
				return nil
			})

		got, err := q.SearchLocal(ctx, queries.LocalSearchParams{Query: "cafe"})
		require.NoError(t, err)
		assert.Equal(t, ok.Body, got.Body)
	})

	t.Run("non-200 answers are relayed but not cached", func(t *testing.T) {
		m, q := newLocationQueries(t)
		denied := &queries.Passthrough{Status: http.StatusUnauthorized, ContentType: "application/json", Body: []byte(`{}`)}
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrCacheMiss)
		m.searcher.EXPECT().SearchLocal(gomock.Any(), gomock.Any()).Return(denied, nil)

		got, err := q.SearchLocal(ctx, queries.LocalSearchParams{Query: "cafe"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, got.Status)
	})

	t.Run("broken cache falls through to Naver", func(t *testing.T) {
		m, q := newLocationQueries(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))
		m.searcher.EXPECT().SearchLocal(gomock.Any(), gomock.Any()).Return(ok, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

		got, err := q.SearchLocal(ctx, queries.LocalSearchParams{Query: "cafe"})
		require.NoError(t, err)
		assert.Equal(t, ok, got)
	})

	t.Run("transport failures are marked", func(t *testing.T) {
		m, q := newLocationQueries(t)
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrCacheMiss)
		m.searcher.EXPECT().SearchLocal(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapUpstreamErr(discardLogger(), infra.KindMissingCredentials, 0, "naver search credentials", nil))

		_, err := q.SearchLocal(ctx, queries.LocalSearchParams{Query: "cafe"})
		assert.True(t, errs.Is(err, errs.ErrMissingCredentials), "got %v", err)
	})
}

func TestReverseGeocode(t *testing.T) {
	m, q := newLocationQueries(t)
	params := queries.ReverseGeocodeParams{Coords: "127.0561,37.5447", Output: "json"}
	want := &queries.Passthrough{Status: http.StatusOK, ContentType: "application/json", Body: []byte(`{"results":[]}`)}
	m.geocoder.EXPECT().ReverseGeocode(gomock.Any(), params).Return(want, nil)

	got, err := q.ReverseGeocode(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	m.geocoder.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapUpstreamErr(discardLogger(), infra.KindUnavailable, 0, "reverse geocode", errors.New("timeout")))
	_, err = q.ReverseGeocode(context.Background(), params)
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}
