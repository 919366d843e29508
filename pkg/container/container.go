package container

import (
	"context"
	"fmt"

	"litshelf-backend/internal/config"
	catalogHandler "litshelf-backend/internal/domains/catalog/handler"
	"litshelf-backend/internal/domains/catalog/openlibrary"
	catalogRepo "litshelf-backend/internal/domains/catalog/repository"
	catalogService "litshelf-backend/internal/domains/catalog/service"
	collectionHandler "litshelf-backend/internal/domains/collection/handler"
	collectionRepo "litshelf-backend/internal/domains/collection/repository"
	collectionService "litshelf-backend/internal/domains/collection/service"
	profileHandler "litshelf-backend/internal/domains/profile/handler"
	profileRepo "litshelf-backend/internal/domains/profile/repository"
	profileService "litshelf-backend/internal/domains/profile/service"
	readinglistHandler "litshelf-backend/internal/domains/readinglist/handler"
	readinglistRepo "litshelf-backend/internal/domains/readinglist/repository"
	readinglistService "litshelf-backend/internal/domains/readinglist/service"
	reviewHandler "litshelf-backend/internal/domains/review/handler"
	reviewRepo "litshelf-backend/internal/domains/review/repository"
	reviewService "litshelf-backend/internal/domains/review/service"
	infraCache "litshelf-backend/internal/infrastructure/cache"
	infraDatabase "litshelf-backend/internal/infrastructure/database"
	"litshelf-backend/pkg/jwt"
)

// Container wires the application graph in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config

	DB    *infraDatabase.PostgresDB
	Cache *infraCache.RedisClient

	JWTManager *jwt.Manager

	CatalogHandler     *catalogHandler.CatalogHandler
	CollectionHandler  *collectionHandler.CollectionHandler
	ReadingListHandler *readinglistHandler.ReadingListHandler
	ReviewHandler      *reviewHandler.ReviewHandler
	ProfileHandler     *profileHandler.ProfileHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.DB = infraDatabase.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Cache = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Repositories.
	books := catalogRepo.NewPostgresBookRepository(c.DB.Pool)
	collections := collectionRepo.NewPostgresCollectionRepository(c.DB.Pool)
	readingLists := readinglistRepo.NewPostgresReadingListRepository(c.DB.Pool)
	reviews := reviewRepo.NewPostgresReviewRepository(c.DB.Pool)
	profiles := profileRepo.NewPostgresProfileRepository(c.DB.Pool)

	// Services. The catalog service doubles as the book resolver for every
	// domain that accepts raw catalog hits.
	olClient := openlibrary.NewClient(cfg.OpenLibrary.BaseURL, cfg.OpenLibrary.Timeout)
	catalog := catalogService.NewCatalogService(olClient, books, c.Cache, cfg.OpenLibrary.SearchCache)
	collection := collectionService.NewCollectionService(collections, catalog)
	readingList := readinglistService.NewReadingListService(readingLists, catalog)
	review := reviewService.NewReviewService(reviews, catalog, c.Cache, cfg.Redis.StatsCacheTTL)
	profile := profileService.NewProfileService(profiles, c.Cache)

	// Handlers.
	c.CatalogHandler = catalogHandler.NewCatalogHandler(catalog)
	c.CollectionHandler = collectionHandler.NewCollectionHandler(collection)
	c.ReadingListHandler = readinglistHandler.NewReadingListHandler(readingList)
	c.ReviewHandler = reviewHandler.NewReviewHandler(review)
	c.ProfileHandler = profileHandler.NewProfileHandler(profile)

	return c, nil
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
