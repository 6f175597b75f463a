package main

import (
	"log"
	"os"
	predictions "temporal-prediction-dashboard"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	// Create Temporal client
	c, err := client.Dial(predictions.GetClientOptions())
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	taskQueue := os.Getenv("TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = predictions.TaskQueueName
	}

	// Create worker
	w := worker.New(c, taskQueue, worker.Options{})

	// Register workflows
	w.RegisterWorkflow(predictions.MatchBoardWorkflow)
	w.RegisterWorkflow(predictions.PredictionWorkflow)

	// Register activities
	w.RegisterActivity(predictions.GetMatchesActivity)
	w.RegisterActivity(predictions.GetMatchDetailActivity)
	w.RegisterActivity(predictions.GetRosterActivity)
	w.RegisterActivity(predictions.SubmitPredictionActivity)

	// Start worker
	log.Println("Starting Temporal worker for the prediction dashboard...")
	err = w.Run(worker.InterruptCh())
	if err != nil {
		log.Fatalln("Unable to start worker", err)
	}
}
