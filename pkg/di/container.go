package di

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Msparihar/todo/application/serviceimpl"
	"github.com/Msparihar/todo/domain/repositories"
	"github.com/Msparihar/todo/domain/services"
	"github.com/Msparihar/todo/infrastructure/postgres"
	"github.com/Msparihar/todo/interfaces/api/handlers"
	"github.com/Msparihar/todo/pkg/config"
	"github.com/Msparihar/todo/pkg/logger"
)

type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepository    repositories.UserRepository
	ProjectRepository repositories.ProjectRepository
	TagRepository     repositories.TagRepository
	TodoRepository    repositories.TodoRepository

	UserService    services.UserService
	ProjectService services.ProjectService
	TagService     services.TagService
	TodoService    services.TodoService
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

	if err := c.initDatabase(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.ProjectRepository = postgres.NewProjectRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
	c.TodoRepository = postgres.NewTodoRepository(c.DB)
}

func (c *Container) initServices() {
	jwtExpiry := time.Duration(c.Config.JWT.ExpireMinutes) * time.Minute
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, jwtExpiry)
	c.ProjectService = serviceimpl.NewProjectService(c.ProjectRepository)
	c.TagService = serviceimpl.NewTagService(c.TagRepository)
	c.TodoService = serviceimpl.NewTodoService(c.TodoRepository, c.ProjectRepository, c.TagRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:    c.UserService,
		ProjectService: c.ProjectService,
		TagService:     c.TagService,
		TodoService:    c.TodoService,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
