package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Vinaypunani/build-gaming/internal/adapters/httpserver"
	"github.com/Vinaypunani/build-gaming/internal/adapters/repo/postgres"
	"github.com/Vinaypunani/build-gaming/internal/adapters/session/memory"
	"github.com/Vinaypunani/build-gaming/internal/adapters/session/redisstore"
	"github.com/Vinaypunani/build-gaming/internal/compat"
	"github.com/Vinaypunani/build-gaming/internal/config"
	"github.com/Vinaypunani/build-gaming/internal/domain"
	"github.com/Vinaypunani/build-gaming/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	Config     *config.Config
	Components domain.ComponentRepo
	Sessions   domain.BuildStore
	CatalogUC  *usecase.CatalogUC
	BuilderUC  *usecase.BuilderUC
	QuoteUC    *usecase.QuoteUC
	ImportUC   *usecase.ImportUC
	CartUC     *usecase.CartUC

	redis  *goredis.Client
	memory *memory.Store
}

func NewApp(ctx context.Context, db *gorm.DB, cfg *config.Config) (*App, error) {
	compRepo := postgres.NewComponentRepo(db)
	cartRepo := postgres.NewCartRepo(db)

	app := &App{DB: db, Config: cfg, Components: compRepo}

	if cfg.RedisURL != "" {
		client, err := redisstore.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		app.redis = client
		app.Sessions = redisstore.New(client, cfg.SessionTTL)
		log.Info().Msg("sesiones en redis")
	} else {
		app.memory = memory.New(cfg.SessionTTL)
		app.Sessions = app.memory
		log.Info().Msg("sesiones en memoria")
	}

	validator := compat.NewValidator(compat.DefaultRegistry(compat.Options{PowerOverheadWatts: cfg.PowerOverhead}))
	builder := usecase.NewBuilder(cfg.Pricing, validator, cfg.PlaceholderImage)

	app.CatalogUC = &usecase.CatalogUC{Components: compRepo}
	app.BuilderUC = usecase.NewBuilderUC(app.Sessions, compRepo, cartRepo, builder)
	app.QuoteUC = usecase.NewQuoteUC()
	app.ImportUC = &usecase.ImportUC{Components: compRepo}
	app.CartUC = &usecase.CartUC{Cart: cartRepo}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Catalog:    a.CatalogUC,
		Builder:    a.BuilderUC,
		Quotes:     a.QuoteUC,
		Imports:    a.ImportUC,
		Cart:       a.CartUC,
		AdminToken: a.Config.AdminToken,
		SessionTTL: a.Config.SessionTTL,
	})
}

// Background corre las tareas de mantenimiento hasta que ctx se cancela.
func (a *App) Background(ctx context.Context) {
	if a.memory != nil {
		go a.memory.Run(ctx, 10*time.Minute)
	}
}

func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func (a *App) MigrateAndSeed(ctx context.Context) error {
	if err := a.DB.WithContext(ctx).AutoMigrate(&domain.Component{}, &domain.CartItem{}); err != nil {
		return err
	}
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_components_specs_gin ON components USING gin (specs)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_cart_items_owner_created ON cart_items (owner, created_at)").Error
	// el line item es único por dueño, no global
	_ = a.DB.Exec("DROP INDEX IF EXISTS idx_cart_items_line_item_id").Error

	if !a.Config.SeedCatalog {
		return nil
	}
	return seedCatalog(ctx, a.Components)
}

// seedCatalog carga el catálogo inicial solo si la tabla está vacía.
func seedCatalog(ctx context.Context, repo domain.ComponentRepo) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	comps := seedComponents()
	for i := range comps {
		if err := comps[i].Validate(); err != nil {
			return fmt.Errorf("seed %s: %w", comps[i].ID, err)
		}
		if err := repo.Save(ctx, &comps[i]); err != nil {
			return err
		}
	}
	log.Info().Int("componentes", len(comps)).Msg("catálogo inicial cargado")
	return nil
}
