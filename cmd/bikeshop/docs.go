package main

// @title Bikeshop API
// @version 1.0
// @description Inventory service for bike categories and bikes with a full observability stack (Prometheus, OpenTelemetry)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:5000
// @BasePath /

// @tag.name Categories
// @tag.description Bike category management

// @tag.name Bikes
// @tag.description Bike inventory management

// @tag.name Health
// @tag.description Health check endpoints
