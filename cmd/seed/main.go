package main

import (
	"context"
	"log"

	"notebook-query-be/internal/config"
	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/mapper"
	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/document"
	"notebook-query-be/pkg/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// demoData builds a small notebook so the console has something to query.
func demoData() ([]*entity.Notebook, []*entity.Paragraph) {
	paragraphs := []*entity.Paragraph{
		{Id: bson.NewObjectID().Hex(), Code: `println("hello")`, Result: "hello"},
		{Id: bson.NewObjectID().Hex(), Code: "1 + 1", Result: "2"},
	}
	notebooks := []*entity.Notebook{
		{Id: bson.NewObjectID().Hex(), Name: "Demo", Paragraphs: []string{paragraphs[0].Id, paragraphs[1].Id}},
		{Id: bson.NewObjectID().Hex(), Name: "Empty", Paragraphs: []string{}},
	}
	return notebooks, paragraphs
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	notebooks, paragraphs := demoData()

	switch cfg.Database.Driver {
	case config.DriverMongo:
		seedMongo(cfg.Database, notebooks, paragraphs)
	case config.DriverPostgres:
		seedPostgres(cfg.Database, notebooks, paragraphs)
	default:
		log.Fatalf("Error: driver %q has nothing to seed, use SEED_FILE instead", cfg.Database.Driver)
	}

	for _, n := range notebooks {
		log.Printf("Seeded notebook %s (%s)", n.Id, n.Name)
	}
}

func seedMongo(cfg config.DatabaseConfig, notebooks []*entity.Notebook, paragraphs []*entity.Paragraph) {
	ctx := context.Background()
	client, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Error: Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Name)
	notebookMapper := mapper.NewNotebookMapper()
	paragraphMapper := mapper.NewParagraphMapper()

	for _, p := range paragraphs {
		doc, err := paragraphMapper.ToDocument(p)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.Collection(document.ParagraphCollection).InsertOne(ctx, doc); err != nil {
			log.Fatalf("Error creating paragraph %s: %v", p.Id, err)
		}
	}
	for _, n := range notebooks {
		doc, err := notebookMapper.ToDocument(n)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.Collection(document.NotebookCollection).InsertOne(ctx, doc); err != nil {
			log.Fatalf("Error creating notebook %s: %v", n.Id, err)
		}
	}
}

func seedPostgres(cfg config.DatabaseConfig, notebooks []*entity.Notebook, paragraphs []*entity.Paragraph) {
	db, err := database.NewGormDBFromDSN(cfg.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := db.AutoMigrate(&model.Notebook{}, &model.Paragraph{}); err != nil {
		log.Fatal("Error: Failed to migrate:", err)
	}

	notebookMapper := mapper.NewNotebookMapper()
	paragraphMapper := mapper.NewParagraphMapper()

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, p := range paragraphs {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(paragraphMapper.ToModel(p)).Error; err != nil {
				return err
			}
		}
		for _, n := range notebooks {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(notebookMapper.ToModel(n)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error: Failed to seed:", err)
	}
}
