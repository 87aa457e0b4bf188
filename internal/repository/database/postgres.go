package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/SpookyBoy99/chroma/internal/configs"
	_ "github.com/lib/pq"
)

const CreatePhoto = "Repository-CreatePhoto"
const CommitPhoto = "Repository-CommitPhoto"
const DeletePhoto = "Repository-DeletePhoto"
const GetPhoto = "Repository-GetPhoto"
const GetPhotos = "Repository-GetPhotos"
const GetAlbum = "Repository-GetAlbum"
const AddAlbum = "Repository-AddAlbum"
const DeleteAlbum = "Repository-DeleteAlbum"
const UpsertUser = "Repository-UpsertUser"

func NewPostgresConnection(cfg configs.DatabaseConfig) (*DBObject, error) {
	dbObject := &DBObject{}
	connectionString := buildConnectionString(cfg)
	err := dbObject.Open(cfg.Driver, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to connect to Postgre-Client: %v", err)
		return nil, err
	}

	err = dbObject.Ping()
	if err != nil {
		dbObject.Close()
		return nil, err
	}

	log.Println("[DEBUG] [Gallery-Service] Successful connect to Postgre-Client")
	return dbObject, nil
}

type DBObject struct {
	connect *sql.DB
	mapstmt map[string]*sql.Stmt
}

func (db *DBObject) Open(driverName, connectionString string) error {
	var err error
	db.connect, err = sql.Open(driverName, connectionString)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Postgre-Client-Open error: %v", err)
		return err
	}
	db.mapstmt = make(map[string]*sql.Stmt)
	queries := map[string]string{
		insertPhotoQuery:  "Prepare insert photo",
		commitPhotoQuery:  "Prepare commit photo",
		deletePhotoQuery:  "Prepare delete photo",
		selectPhotoQuery:  "Prepare select photo",
		selectPhotosQuery: "Prepare select photos",
		selectAlbumQuery:  "Prepare select album",
		insertAlbumQuery:  "Prepare insert album",
		deleteAlbumQuery:  "Prepare delete album",
		upsertUserQuery:   "Prepare upsert user",
	}
	for query, errv := range queries {
		stmt, err := db.connect.Prepare(query)
		if err != nil {
			return fmt.Errorf("%s: %w", errv, err)
		}
		db.mapstmt[query] = stmt
	}
	return nil
}

func (db *DBObject) Close() {
	for _, stmt := range db.mapstmt {
		stmt.Close()
	}
	db.connect.Close()
	log.Println("[DEBUG] [Gallery-Service] Successful close Postgre-Client")
}

func (db *DBObject) Ping() error {
	err := db.connect.Ping()
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Postgre-Client-Ping error: %v", err)
		return err
	}
	return nil
}

func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
