package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"telegram-registration-bot/internal/config"
	pg "telegram-registration-bot/internal/infra/db/postgres"
)

// Catalog rows the bot expects on a fresh database. The interest list keeps
// the alias targets (волейбол, игра на гитаре, игра на пианино) present so
// aliased input always resolves.
var (
	regions = []string{
		"Москва",
		"Московская область",
		"Санкт-Петербург",
		"Казань",
		"Нижний Новгород",
		"Екатеринбург",
		"Новосибирск",
		"Краснодар",
	}
	interests = []string{
		"Волейбол",
		"Футбол",
		"Теннис",
		"Плавание",
		"Бег",
		"Музыка",
		"Игра на гитаре",
		"Игра на пианино",
		"Рисование",
		"Фотография",
		"Программирование",
		"Настольные игры",
		"Волонтёрство",
	}
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, false)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := pg.CheckEncoding(ctx, pool); err != nil {
		log.Fatalf("encoding check: %v", err)
	}

	seeded := 0
	for _, name := range regions {
		tag, err := pool.Exec(ctx, `INSERT INTO regions (region) VALUES ($1) ON CONFLICT (region) DO NOTHING`, name)
		if err != nil {
			log.Fatalf("seed region %q: %v", name, err)
		}
		seeded += int(tag.RowsAffected())
	}
	fmt.Printf("regions: %d new of %d\n", seeded, len(regions))

	seeded = 0
	for _, name := range interests {
		tag, err := pool.Exec(ctx, `INSERT INTO interests (interest) VALUES ($1) ON CONFLICT (interest) DO NOTHING`, name)
		if err != nil {
			log.Fatalf("seed interest %q: %v", name, err)
		}
		seeded += int(tag.RowsAffected())
	}
	fmt.Printf("interests: %d new of %d\n", seeded, len(interests))

	fmt.Println("seeding complete")
}
