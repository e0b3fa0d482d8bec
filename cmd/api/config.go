package main

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"

	"github.com/aclgate/aclgate/core"
)

type Config struct {
	Server Server      `yaml:"server"`
	ACL    core.Config `yaml:"acl"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	Listen        string `yaml:"listen"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	// unset yaml keys keep this default, zero values get normalized
	c.ACL.LogSamplingRate = 1.0

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	c.ACL = c.ACL.Normalize()

	return nil
}
