package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "SCHEDSIM"

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	ContextSwitch         int
	ExtremeCount          int
	ExtremeSeed           uint64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once for the lifetime of the
// process and exits if it is malformed.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing file yields the defaults;
// SCHEDSIM_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ContextSwitch:         v.GetInt("scheduler.fcfs.context_switch"),
		ExtremeCount:          v.GetInt("workload.extreme.count"),
		ExtremeSeed:           v.GetUint64("workload.extreme.seed"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.fcfs.context_switch", 0)
	v.SetDefault("workload.extreme.count", 50)
	v.SetDefault("workload.extreme.seed", 12345)
}
