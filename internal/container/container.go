package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jcgarciar/tasks-backend/config"
	"github.com/jcgarciar/tasks-backend/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Everything here is a process-wide singleton initialized once at startup;
// there is no teardown beyond process exit.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoClient *mongo.Client
	mongoDB     *mongo.Database

	jwtManager *helpers.JWTManager
	rabbitPub  *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetMongo(client *mongo.Client, db *mongo.Database) {
	mongoClient = client
	mongoDB = db
}
func GetMongoClient() *mongo.Client     { return mongoClient }
func GetMongoDatabase() *mongo.Database { return mongoDB }

func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
