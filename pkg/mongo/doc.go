// Package mongo provides MongoDB connection management with environment-based
// configuration, connection retry logic, and pooling defaults that work
// without manual tuning.
//
// # Usage
//
//	cfg := mongo.Config{
//		ConnectionURL: "mongodb://localhost:27017",
//	}
//
//	client, err := mongo.New(context.Background(), cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(context.Background())
//
//	db, _ := mongo.NewWithDatabase(context.Background(), cfg, "carebook")
//
//	// Wire health check
//	health := mongo.Healthcheck(client)
//	if err := health(context.Background()); err != nil {
//		log.Println("mongo is unavailable:", err)
//	}
//
// Configuration is entirely environment-driven; populate Config through the
// config package. Connection failures are wrapped in sentinel errors usable
// with errors.Is.
package mongo
