package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Env         string
	Port        string
	APIPrefix   string
	StoreDriver string

	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Leave     LeaveConfig
	Approval  ApprovalConfig
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr          string
	ChainCacheTTL time.Duration
}

type KafkaConfig struct {
	Broker        string
	AuditTopic    string
	ConsumerGroup string
	PollInterval  time.Duration
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// LeaveConfig controls submission validation. The legacy console accepted
// any date range and overlapping requests, so both checks are switchable.
type LeaveConfig struct {
	ValidateDateOrder bool
	RejectOverlap     bool
	Types             []string `mapstructure:"types"`
}

// ApprovalConfig is the reference data behind the static registry.
type ApprovalConfig struct {
	SuperuserRole string             `mapstructure:"superuser_role"`
	Departments   []DepartmentConfig `mapstructure:"departments"`
	Users         []UserConfig       `mapstructure:"users"`
}

type DepartmentConfig struct {
	Code      string   `mapstructure:"code"`
	Name      string   `mapstructure:"name"`
	Approvers []string `mapstructure:"approvers"`
}

type UserConfig struct {
	ID             string   `mapstructure:"id"`
	FullName       string   `mapstructure:"full_name"`
	DepartmentCode string   `mapstructure:"department_code"`
	Roles          []string `mapstructure:"roles"`
}

// Load reads .env (when present), the process environment and the approval
// reference file named by APPROVAL_CONFIG_FILE.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Env:         v.GetString("ENV"),
		Port:        v.GetString("PORT"),
		APIPrefix:   v.GetString("API_PREFIX"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
	}

	cfg.Database = DatabaseConfig{
		Host:       v.GetString("DB_HOST"),
		Port:       v.GetString("DB_PORT"),
		User:       v.GetString("DB_USER"),
		Password:   v.GetString("DB_PASSWORD"),
		Name:       v.GetString("DB_NAME"),
		SSLMode:    v.GetString("DB_SSLMODE"),
		MaxRetries: v.GetInt("DB_MAX_RETRIES"),
	}

	cfg.Redis = RedisConfig{
		Addr:          v.GetString("REDIS_ADDR"),
		ChainCacheTTL: v.GetDuration("APPROVAL_CHAIN_CACHE_TTL"),
	}

	cfg.Kafka = KafkaConfig{
		Broker:        v.GetString("KAFKA_BROKER"),
		AuditTopic:    v.GetString("KAFKA_AUDIT_TOPIC"),
		ConsumerGroup: v.GetString("KAFKA_CONSUMER_GROUP"),
		PollInterval:  v.GetDuration("OUTBOX_POLL_INTERVAL"),
	}

	cfg.JWT = JWTConfig{Secret: v.GetString("JWT_SECRET")}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.RateLimit = RateLimitConfig{
		PerSecond: v.GetFloat64("RATE_LIMIT_PER_SECOND"),
		Burst:     v.GetInt("RATE_LIMIT_BURST"),
	}

	cfg.Leave = LeaveConfig{
		ValidateDateOrder: v.GetBool("LEAVE_VALIDATE_DATE_ORDER"),
		RejectOverlap:     v.GetBool("LEAVE_REJECT_OVERLAP"),
	}

	approval, leaveTypes, err := loadApprovalFile(v.GetString("APPROVAL_CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	cfg.Approval = approval
	cfg.Leave.Types = leaveTypes

	if cfg.StoreDriver != StoreDriverMemory && cfg.StoreDriver != StoreDriverPostgres {
		return nil, errors.New("STORE_DRIVER must be memory or postgres")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", "3000")
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hrm")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("APPROVAL_CHAIN_CACHE_TTL", "30m")

	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "hr.leave.audit.v1")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "hrm-audit-log")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("RATE_LIMIT_PER_SECOND", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.SetDefault("LEAVE_VALIDATE_DATE_ORDER", true)
	v.SetDefault("LEAVE_REJECT_OVERLAP", false)

	v.SetDefault("APPROVAL_CONFIG_FILE", "config/approval.yaml")
}

// loadApprovalFile reads department chains, seeded users and leave types.
// A missing file falls back to the built-in defaults.
func loadApprovalFile(path string) (ApprovalConfig, []string, error) {
	v := viper.New()
	v.SetDefault("superuser_role", "SUPERUSER")
	v.SetDefault("departments", defaultDepartments())
	v.SetDefault("users", defaultUsers())
	v.SetDefault("leave_types", defaultLeaveTypes())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return ApprovalConfig{}, nil, err
			}
		}
	}

	var out ApprovalConfig
	if err := v.Unmarshal(&out); err != nil {
		return ApprovalConfig{}, nil, err
	}
	return out, v.GetStringSlice("leave_types"), nil
}

func defaultDepartments() []map[string]any {
	office := []string{"OM", "DM", "CEO"}
	sales := []string{"SUP", "OM", "DM", "CEO"}
	plant := []string{"FM", "SUP", "PM", "DM"}

	return []map[string]any{
		{"code": "ACC", "name": "Accounting", "approvers": office},
		{"code": "FIN", "name": "Finance", "approvers": office},
		{"code": "HR", "name": "Human Resources", "approvers": office},
		{"code": "SEC", "name": "Secretariat", "approvers": office},
		{"code": "PUR", "name": "Purchasing", "approvers": office},
		{"code": "OFF", "name": "Office", "approvers": sales},
		{"code": "SALES", "name": "Sales", "approvers": sales},
		{"code": "WH", "name": "Warehouse", "approvers": sales},
		{"code": "MNT", "name": "Maintenance", "approvers": plant},
		{"code": "PROD", "name": "Production", "approvers": plant},
		{"code": "BOIL", "name": "Boiler", "approvers": plant},
		{"code": "GEN", "name": "General Labour", "approvers": plant},
	}
}

func defaultUsers() []map[string]any {
	return []map[string]any{
		{"id": "u1", "full_name": "Chayapol (Superuser)", "department_code": "HR", "roles": []string{"SUPERUSER", "CEO", "ADMIN"}},
		{"id": "u2", "full_name": "Somsak Khayan", "department_code": "PROD", "roles": []string{"EMPLOYEE"}},
		{"id": "u3", "full_name": "Mana Huanagan", "department_code": "PROD", "roles": []string{"EMPLOYEE", "DM"}},
		{"id": "u4", "full_name": "Hana Bukkhon", "department_code": "HR", "roles": []string{"EMPLOYEE", "HR"}},
	}
}

func defaultLeaveTypes() []string {
	return []string{
		"Sick Leave",
		"Personal Leave",
		"Vacation",
		"Maternity Leave",
		"Unpaid Leave",
	}
}
