package service

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/pkg/util"
	"github.com/Gthulhu/priosim/simulator"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const defaultCacheCapacity = 128

type Params struct {
	fx.In
	Repo        domain.Repository
	CacheConfig config.CacheConfig
	Limits      config.LimitsConfig
	TokenConfig config.TokenConfig
	Registerer  prometheus.Registerer `optional:"true"`
}

func NewService(params Params) (domain.Service, error) {
	var jwtPrivateKey *rsa.PrivateKey
	if params.TokenConfig.Enable {
		key, err := util.InitRSAPrivateKey(params.TokenConfig.RsaPrivateKeyPem.Value())
		if err != nil {
			return nil, fmt.Errorf("initialize JWT private key: %w", err)
		}
		jwtPrivateKey = key
	}

	registerer := params.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	collector, err := registerMetricCollector(registerer, NewMetricCollector(util.GetMachineID()))
	if err != nil {
		return nil, err
	}

	capacity := params.CacheConfig.Capacity
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}

	return &Service{
		Repo:            params.Repo,
		resultCache:     cache.New(cache.AsLRU[string, *simulator.Result](lru.WithCapacity(capacity))),
		resultCacheTTL:  time.Duration(params.CacheConfig.TTLSec) * time.Second,
		limits:          params.Limits,
		tokenConfig:     params.TokenConfig,
		jwtPrivateKey:   jwtPrivateKey,
		metricCollector: collector,
	}, nil
}

// registerMetricCollector registers c, or returns the collector already registered in its place.
func registerMetricCollector(registerer prometheus.Registerer, c *MetricCollector) (*MetricCollector, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*MetricCollector); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("failed to register metric collector: %v", err)
}

type Service struct {
	Repo            domain.Repository
	resultCache     *cache.Cache[string, *simulator.Result]
	resultCacheTTL  time.Duration
	limits          config.LimitsConfig
	tokenConfig     config.TokenConfig
	jwtPrivateKey   *rsa.PrivateKey
	metricCollector *MetricCollector
}
