package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jcgarciar/tasks-backend/config"
	"github.com/jcgarciar/tasks-backend/internal/domain/entity"
	"github.com/jcgarciar/tasks-backend/internal/infrastructure/mongodb"
)

// Seeds a demo user with a few tasks for local development. Running it twice
// reuses the existing user and appends more tasks.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDatabase)
	users := mongodb.NewUserRepository(db)
	tasks := mongodb.NewTaskRepository(db)

	email := "demo@example.com"
	u, err := users.FindByEmail(ctx, email)
	if err != nil {
		u = &entity.User{Email: email}
		if err := users.Insert(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s email=%s\n", u.ID.Hex(), u.Email)

	now := time.Now().UTC()
	samples := []entity.Task{
		{
			UserID:      u.ID.Hex(),
			Title:       "Comprar viveres semana",
			Description: "Fruta, verdura, cafe y pan para la semana",
			TaskDate:    now.Add(24 * time.Hour).Format(entity.TaskDateLayout),
		},
		{
			UserID:      u.ID.Hex(),
			Title:       "Preparar presentacion",
			Description: "Armar las laminas para la reunion del jueves",
			TaskDate:    now.Add(48 * time.Hour).Format(entity.TaskDateLayout),
		},
		{
			UserID:      u.ID.Hex(),
			Title:       "Revisar pendientes correo",
			Description: "Responder los correos acumulados del proyecto",
			TaskDate:    now.Add(72 * time.Hour).Format(entity.TaskDateLayout),
			Completed:   true,
		},
	}
	for i := range samples {
		samples[i].CreatedAt = now
		if err := tasks.Insert(ctx, &samples[i]); err != nil {
			log.Fatalf("failed to seed task: %v", err)
		}
	}

	count, err := db.Collection("tasks").CountDocuments(ctx, bson.M{"userId": u.ID.Hex()})
	if err == nil {
		fmt.Printf("user now has %d tasks\n", count)
	}
}
