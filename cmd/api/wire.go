//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aclgate/aclgate/core"
	"github.com/aclgate/aclgate/x/gate"
	"github.com/aclgate/aclgate/x/route"
	"github.com/aclgate/aclgate/x/rule"
	"github.com/aclgate/aclgate/x/throttle"
)

var routeProvider = wire.NewSet(route.NewHandler, route.NewService, route.NewRepository, rule.NewService, rule.NewRepository)
var ruleProvider = wire.NewSet(rule.NewHandler, rule.NewService, rule.NewRepository, route.NewService, route.NewRepository)
var throttleProvider = wire.NewSet(throttle.NewService, throttle.NewRepository)
var gateProvider = wire.NewSet(gate.NewHandler, gate.NewRepository)

func SetupRouteService(db *gorm.DB, mc *memcache.Client, config core.Config) core.RouteService {
	wire.Build(route.NewService, route.NewRepository)
	return nil
}

func SetupRouteHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) route.Handler {
	wire.Build(routeProvider)
	return nil
}

func SetupRuleService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.RuleService {
	wire.Build(rule.NewService, rule.NewRepository, route.NewService, route.NewRepository)
	return nil
}

func SetupRuleHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) rule.Handler {
	wire.Build(ruleProvider)
	return nil
}

func SetupThrottleService(rdb *redis.Client, config core.Config) core.ThrottleService {
	wire.Build(throttleProvider)
	return nil
}

func SetupGateService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, sink core.EventSink, config core.Config) core.GateService {
	wire.Build(gate.NewService, gate.NewRepository, rule.NewService, rule.NewRepository, route.NewService, route.NewRepository, throttle.NewService, throttle.NewRepository)
	return nil
}

func SetupGateHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) gate.Handler {
	wire.Build(gateProvider, rule.NewService, rule.NewRepository, route.NewService, route.NewRepository, throttle.NewService, throttle.NewRepository)
	return nil
}
