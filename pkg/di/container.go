package di

import (
	"taskflow/application/serviceimpl"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/infrastructure/postgres"
	"taskflow/interfaces/api/handlers"
	"taskflow/pkg/clock"
	"taskflow/pkg/config"
	"taskflow/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB    *gorm.DB
	UoW   repositories.UnitOfWork
	Clock clock.Clock

	// Repositories
	UserRepository        repositories.UserRepository
	TaskRepository        repositories.TaskRepository
	ActivityLogRepository repositories.ActivityLogRepository

	// Services
	UserService     services.UserService
	TaskService     services.TaskService
	ActivityService services.ActivityService
	KPIService      services.KPIService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	c.UoW = postgres.NewTxManager(db)
	c.Clock = clock.System()

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.ActivityLogRepository = postgres.NewActivityLogRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.ActivityLogRepository,
		c.UserRepository,
		c.UoW,
		c.Clock,
	)
	c.ActivityService = serviceimpl.NewActivityService(c.ActivityLogRepository, c.Clock)
	c.KPIService = serviceimpl.NewKPIService(c.TaskRepository, c.Clock)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		TaskService:     c.TaskService,
		ActivityService: c.ActivityService,
		KPIService:      c.KPIService,
	}
}
