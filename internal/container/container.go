package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/errorreport"
	"websubmit/portal/internal/mailer"
	"websubmit/portal/internal/messages"
	"websubmit/portal/internal/queue"
	"websubmit/portal/internal/repository"
	"websubmit/portal/internal/server"
	"websubmit/portal/internal/state"
	"websubmit/portal/internal/submission"
	"websubmit/portal/internal/webstyle"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Records   repository.RecordRepository
	Roles     repository.RoleRepository
	Queue     queue.Queue
	Sequence  state.SequenceAllocator
	Scheduler mailer.Scheduler
	Registrar *errorreport.Registrar
	Composer  *webstyle.Composer

	Decision  *submission.FinalDecisionNotifier
	Submitted *submission.SubmittedNotifier
	Uploader  *submission.RecordUploader
	Server    *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	catalogue, err := messages.NewCatalogue()
	if err != nil {
		return nil, fmt.Errorf("failed to load message catalogue: %w", err)
	}
	for _, path := range cfg.Site.CatalogueFiles {
		if err := catalogue.MergeFile(path); err != nil {
			return nil, fmt.Errorf("failed to load message catalogue %s: %w", path, err)
		}
		log.Infof("✅ Loaded messages from %s", path)
	}

	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	container.db = db

	container.Records = repository.NewRecordRepository(db)
	container.Roles = repository.NewRoleRepository(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	container.redis = rdb

	// Test connection
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("✅ Connected to Redis successfully")

	redisQueue, err := queue.NewRedisQueue(ctx, rdb, cfg.Redis)
	if err != nil {
		container.Close()
		return nil, err
	}
	container.Queue = redisQueue

	container.Sequence = state.NewRedisSequenceAllocator(rdb, cfg.Redis.SequenceKey)
	container.Scheduler = mailer.NewScheduler(redisQueue, cfg.Site.AdminEmail)
	container.Registrar = errorreport.NewRegistrar(cfg.ErrorReport, errorreport.NewSender(cfg.ErrorReport))
	container.Composer = webstyle.NewComposer(cfg.Site, catalogue, container.Records)

	recipients := submission.NewRecipientResolver(
		container.Roles,
		container.Records,
		cfg.Submission.RecordOwnerEmailTag,
		container.Registrar,
	)
	container.Decision = submission.NewFinalDecisionNotifier(
		cfg.Site,
		cfg.Submission,
		container.Scheduler,
		container.Sequence,
		container.Records,
		recipients,
		container.Registrar,
	)
	container.Submitted = submission.NewSubmittedNotifier(
		cfg.Site,
		cfg.Submission,
		container.Scheduler,
		container.Sequence,
		container.Registrar,
	)
	container.Uploader = submission.NewRecordUploader(redisQueue, container.Sequence, cfg.Submission.TmpDir)
	container.Server = server.New(cfg.Server, container.Composer, container.Scheduler)

	return container, nil
}

// Run serves HTTP until ctx is cancelled, watching the backing stores meanwhile
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.ListenAndServe(ctx)
	})

	g.Go(func() error {
		return c.watchConnections(ctx, 30*time.Second)
	})

	return g.Wait()
}

// watchConnections logs when the database or Redis stop answering
func (c *Container) watchConnections(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.db.Ping(ctx); err != nil && ctx.Err() == nil {
				log.Warnf("⚠️ Database ping failed: %v", err)
			}
			if err := c.redis.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
				log.Warnf("⚠️ Redis ping failed: %v", err)
			}
		}
	}
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warnf("⚠️ Failed to close Redis client: %v", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
