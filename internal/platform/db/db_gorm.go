package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "watchlist_backend/internal/feature/auth/domain/entity"
	watchadapters "watchlist_backend/internal/feature/watchlist/adapters"
)

// OpenDB はDB_DRIVERに応じてデータベース接続を開きます。
// 既定はファイルベースのSQLite、DB_DRIVER=postgresでPostgreSQL（pgx経由）を使用します。
// 接続が確立するまで最大60秒リトライします。
func OpenDB() *gorm.DB {
	var dial gorm.Dialector

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
		dial = postgres.Open(dsn)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "watchlist.db"
		}
		dial = sqlite.Open(path)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: ユニークキー違反をgorm.ErrDuplicatedKeyに正規化する
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, WatchlistRecord）
		if err := db.AutoMigrate(
			&authentity.User{},
			&watchadapters.RecordModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
