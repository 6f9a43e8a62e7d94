// Command board is a terminal view of the task board: signs in, loads
// the four columns, optionally applies one change, and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"taskboard/internal/board"
	"taskboard/internal/client"
	"taskboard/internal/config"
	"taskboard/internal/model"
)

func main() {
	var (
		email    = flag.String("email", "", "account email")
		password = flag.String("password", "", "account password")
		create   = flag.String("create", "", "create a task with this title")
		column   = flag.String("column", string(model.StatusToDo), "column for -create")
		move     = flag.String("move", "", "id of a task to move")
		to       = flag.String("to", "", "destination column for -move")
		remove   = flag.String("delete", "", "id of a task to delete")
	)
	flag.Parse()

	cfg := config.Load()
	api, err := client.New(cfg.APIBaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to build client: %v", err)
	}

	ctx := context.Background()
	user, err := api.SignIn(ctx, *email, *password)
	if err != nil {
		log.Fatalf("❌ Sign-in failed: %v", err)
	}
	log.Printf("✅ Signed in as %s", user.Fullname)

	ctrl := board.NewController(api)
	if failures := ctrl.Load(ctx); failures != nil {
		for status, err := range failures {
			log.Printf("⚠️  Failed to load %s: %v", status, err)
		}
	}

	switch {
	case *create != "":
		status, err := model.ParseStatus(*column)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		task, err := ctrl.Create(ctx, client.TaskInput{Title: *create, Status: status})
		if err != nil {
			log.Fatalf("❌ Create failed: %v", err)
		}
		log.Printf("✅ Created %s", task.ID)

	case *move != "":
		status, err := model.ParseStatus(*to)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		task, ok := findTask(ctrl.Snapshot(), *move)
		if !ok {
			log.Fatalf("❌ No task %s on the board", *move)
		}
		if _, err := ctrl.Move(ctx, task, status); err != nil {
			log.Fatalf("❌ Move failed: %v", err)
		}
		log.Printf("✅ Moved %s to %s", task.ID, status)

	case *remove != "":
		task, ok := findTask(ctrl.Snapshot(), *remove)
		if !ok {
			log.Fatalf("❌ No task %s on the board", *remove)
		}
		if err := ctrl.Delete(ctx, task.Status, task.ID); err != nil {
			log.Fatalf("❌ Delete failed: %v", err)
		}
		log.Printf("✅ Deleted %s", task.ID)
	}

	printBoard(ctrl.Snapshot())
}

func findTask(state board.State, id string) (client.Task, bool) {
	for _, tasks := range state {
		for _, task := range tasks {
			if task.ID == id {
				return task, true
			}
		}
	}
	return client.Task{}, false
}

func printBoard(state board.State) {
	for _, status := range model.Statuses() {
		fmt.Printf("\n%s (%d)\n", status, len(state[status]))
		for _, task := range state[status] {
			line := fmt.Sprintf("  [%s] %s", task.ID, task.Title)
			if task.Priority != nil {
				line += fmt.Sprintf(" (%s)", *task.Priority)
			}
			fmt.Println(line)
		}
	}
}
