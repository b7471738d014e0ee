package config

import "os"

type AppConfig struct {
	DebugMode      bool
	ServerConfig   *ServerConfig
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	Judge0Config   *Judge0Config
	ExecutionCfg   *ExecutionCfg
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		ServerConfig:   NewServerConfig(),
		PostgresConfig: NewPostgresConfig(),
		RedisConfig:    NewRedisConfig(),
		Judge0Config:   NewJudge0Config(),
		ExecutionCfg:   NewExecutionCfg(),
		JwtConfig:      NewJwtConfig(),
	}
}
