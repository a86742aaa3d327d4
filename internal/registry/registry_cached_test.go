package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/registry"
	registryerrors "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/errors"
	registryMock "github.com/Chayapol0073-141266/HRM-SDcon/internal/registry/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestCached_ChainFor(t *testing.T) {
	ctx := context.Background()
	ttl := 30 * time.Minute
	key := "approval-chain:ACC"

	setup := func(t *testing.T) (*registry.Cached, *registryMock.MockSource, redismock.ClientMock) {
		ctrl := gomock.NewController(t)
		source := registryMock.NewMockSource(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		return registry.NewCached(source, rdb, ttl, zap.NewNop()), source, redisMock
	}

	t.Run("cache hit skips the source", func(t *testing.T) {
		cached, source, redisMock := setup(t)
		var lookups []bool
		cached.OnLookup(func(hit bool) { lookups = append(lookups, hit) })
		redisMock.ExpectGet(key).SetVal(`["OM","DM","CEO"]`)
		source.EXPECT().ChainFor(gomock.Any(), gomock.Any()).Times(0)

		chain, err := cached.ChainFor(ctx, "acc")
		assert.Equal(t, []bool{true}, lookups)

		assert.NoError(t, err)
		assert.Equal(t, registry.RoleList{registry.RoleOM, registry.RoleDM, registry.RoleCEO}, chain)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		cached, source, redisMock := setup(t)
		var lookups []bool
		cached.OnLookup(func(hit bool) { lookups = append(lookups, hit) })
		redisMock.ExpectGet(key).RedisNil()
		source.EXPECT().
			ChainFor(ctx, "ACC").
			Return(registry.RoleList{registry.RoleOM, registry.RoleDM, registry.RoleCEO}, nil).
			Times(1)
		redisMock.ExpectSet(key, `["OM","DM","CEO"]`, ttl).SetVal("OK")

		chain, err := cached.ChainFor(ctx, "ACC")
		assert.Equal(t, []bool{false}, lookups)

		assert.NoError(t, err)
		assert.Len(t, chain, 3)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("unknown department is not cached", func(t *testing.T) {
		cached, source, redisMock := setup(t)
		redisMock.ExpectGet(key).RedisNil()
		source.EXPECT().
			ChainFor(ctx, "ACC").
			Return(nil, registryerrors.ErrUnknownDepartment)

		chain, err := cached.ChainFor(ctx, "ACC")

		assert.ErrorIs(t, err, registryerrors.ErrUnknownDepartment)
		assert.Nil(t, chain)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("roles are never cached", func(t *testing.T) {
		cached, source, _ := setup(t)
		source.EXPECT().
			RolesOf(ctx, "u3").
			Return(registry.NewRoleSet(registry.RoleDM), nil)

		roles, err := cached.RolesOf(ctx, "u3")

		assert.NoError(t, err)
		assert.True(t, roles.Has(registry.RoleDM))
	})
}

func TestCached_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	cached := registry.NewCached(registryMock.NewMockSource(ctrl), rdb, time.Minute, zap.NewNop())

	redisMock.ExpectDel("approval-chain:WH").SetVal(1)

	assert.NoError(t, cached.Invalidate(context.Background(), "wh"))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
