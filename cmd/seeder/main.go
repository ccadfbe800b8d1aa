package main

import (
	"context"
	"flag"
	"log"

	"github.com/alexivanou/orbis-api/internal/config"
	"github.com/alexivanou/orbis-api/internal/database"
	"github.com/alexivanou/orbis-api/internal/model"
	"github.com/alexivanou/orbis-api/internal/repository"
	"github.com/alexivanou/orbis-api/internal/seeder"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	var (
		seedFile = flag.String("file", "data/seed.json", "Path to the seed file")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		m, err := migrate.New("file://migrations/sqlite", "sqlite3://"+cfg.DB.DSN())
		if err != nil {
			logger.Fatal("Failed to init migration", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("Failed to run migration", zap.Error(err))
		}
	}

	logger.Info("Parsing seed file...", zap.String("file", *seedFile))
	seed, err := seeder.Parse(*seedFile)
	if err != nil {
		logger.Fatal("Failed to parse seed file", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	ctx := context.Background()

	var totalPaises, totalCidades int
	for _, cont := range seed.Continentes {
		continenteID, err := repos.Continente.Insert(ctx, &model.Continente{
			Nome:           cont.Nome,
			Descricao:      cont.Descricao,
			AreaKm2:        cont.AreaKm2,
			NumeroPaises:   cont.NumeroPaises,
			PopulacaoTotal: cont.PopulacaoTotal,
		})
		if err != nil {
			logger.Fatal("Failed to insert continent", zap.String("nome", cont.Nome), zap.Error(err))
		}

		for _, pais := range cont.Paises {
			paisID, err := repos.Pais.Insert(ctx, &model.Pais{
				IDContinente:   continenteID,
				Nome:           pais.Nome,
				PopulacaoTotal: pais.PopulacaoTotal,
				IdiomaOficial:  pais.IdiomaOficial,
				Moeda:          pais.Moeda,
			})
			if err != nil {
				logger.Fatal("Failed to insert country", zap.String("nome", pais.Nome), zap.Error(err))
			}
			totalPaises++

			for _, cidade := range pais.Cidades {
				_, err := repos.Cidade.Insert(ctx, &model.Cidade{
					IDPais:         paisID,
					Nome:           cidade.Nome,
					PopulacaoTotal: cidade.PopulacaoTotal,
					Latitude:       cidade.Latitude,
					Longitude:      cidade.Longitude,
				})
				if err != nil {
					logger.Fatal("Failed to insert city", zap.String("nome", cidade.Nome), zap.Error(err))
				}
				totalCidades++
			}
		}
	}

	logger.Info("Seed completed successfully!",
		zap.Int("continentes", len(seed.Continentes)),
		zap.Int("paises", totalPaises),
		zap.Int("cidades", totalCidades),
	)
}
