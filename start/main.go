package main

import (
	"context"
	"fmt"
	"log"
	"os"
	predictions "temporal-prediction-dashboard"

	"go.temporal.io/sdk/client"
)

// Starts a match board workflow for one sport/league from the command
// line, defaulting to the Premier League scoreboard.
func main() {
	c, err := client.Dial(predictions.GetClientOptions())
	if err != nil {
		log.Fatalln("Unable to create client", err)
	}
	defer c.Close()

	sport := os.Getenv("SPORT")
	if sport == "" {
		sport = "soccer"
	}
	league := os.Getenv("LEAGUE")
	if league == "" {
		league = "eng.1"
	}

	taskQueue := os.Getenv("TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = predictions.TaskQueueName
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("board-%s-%s", sport, league),
		TaskQueue: taskQueue,
	}

	we, err := c.ExecuteWorkflow(context.Background(), options, predictions.MatchBoardWorkflow, predictions.BoardRequest{
		Sport:  sport,
		League: league,
	})
	if err != nil {
		log.Fatalln("Unable to execute workflow", err)
	}
	log.Println("Started match board workflow", "WorkflowID", we.GetID(), "RunID", we.GetRunID())
}
