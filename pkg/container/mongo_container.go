package container

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Gthulhu/priosim/config"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	mongo "go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

const mongoImageTag = "8.0"

// StartMongo runs a throwaway MongoDB for cfg's credentials and returns cfg pointed at it,
// once the server answers a ping.
func StartMongo(builder *ContainerBuilder, name string, cfg config.MongoDBConfig) (config.MongoDBConfig, error) {
	opts := &dockertest.RunOptions{
		Name:       name,
		Repository: "mongo",
		Tag:        mongoImageTag,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + cfg.User,
			"MONGO_INITDB_ROOT_PASSWORD=" + cfg.Password.Value(),
		},
	}
	if cfg.Port != "" {
		opts.PortBindings = map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "127.0.0.1", HostPort: cfg.Port}},
		}
	}
	resource, err := builder.RunWithOptions(opts)
	if err != nil {
		return cfg, err
	}
	builder.AddContainer(resource.Container.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})

	host, port, err := net.SplitHostPort(resource.GetHostPort("27017/tcp"))
	if err != nil {
		return cfg, fmt.Errorf("mongo container %s has no bound port: %w", name, err)
	}
	cfg.Host, cfg.Port = host, port

	err = builder.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		client, err := mongo.Connect(mongooption.Client().ApplyURI(cfg.URI("")))
		if err != nil {
			return err
		}
		defer client.Disconnect(ctx)
		return client.Ping(ctx, nil)
	})
	if err != nil {
		return cfg, fmt.Errorf("wait for mongo container %s: %w", name, err)
	}
	return cfg, nil
}
