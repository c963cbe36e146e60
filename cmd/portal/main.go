// Command portal is a small console over the data access facade. It binds
// whichever backend the config selects, which makes it handy for inspecting
// either the embedded store or a running server without the web UI.
//
//	portal list notices
//	portal delete events 3
//	portal registrations [eventID]
//	portal login <username> <password> -- then reuse the session in one run:
//	portal login admin admin123 delete notices 2
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/csbs-dept/portal-api/internal/config"
	"github.com/csbs-dept/portal-api/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	ctx := context.Background()
	st, err := store.New(ctx, store.Options{
		Backend:       store.Backend(cfg.Backend),
		StorePath:     cfg.LocalStorePath,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		BaseURL:       cfg.APIBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
	}

	for len(args) > 0 {
		args = run(ctx, st, args)
	}
}

func run(ctx context.Context, st *store.Store, args []string) []string {
	switch args[0] {
	case "login":
		if len(args) < 3 {
			usage()
		}
		if err := st.Login(ctx, args[1], args[2]); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		fmt.Println("logged in")
		return args[3:]

	case "list":
		if len(args) < 2 {
			usage()
		}
		listCollection(ctx, st, args[1])
		return args[2:]

	case "delete":
		if len(args) < 3 {
			usage()
		}
		deleteItem(ctx, st, args[1], parseID(args[2]))
		return args[3:]

	case "registrations":
		var eventID uint
		rest := args[1:]
		if len(rest) > 0 {
			if id, err := strconv.ParseUint(rest[0], 10, 64); err == nil {
				eventID = uint(id)
				rest = rest[1:]
			}
		}
		printJSON(st.Registrations(ctx, eventID))
		return rest

	default:
		usage()
		return nil
	}
}

func listCollection(ctx context.Context, st *store.Store, name string) {
	switch name {
	case store.Notices:
		printJSON(st.Notices.List(ctx))
	case store.Events:
		printJSON(st.Events.List(ctx))
	case store.Faculty:
		printJSON(st.Faculty.List(ctx))
	case store.Students:
		printJSON(st.Students.List(ctx))
	case store.Achievements:
		printJSON(st.Achievements.List(ctx))
	case store.Registrations:
		printJSON(st.Registrations(ctx, 0))
	default:
		log.Fatalf("Unknown collection %q", name)
	}
}

func deleteItem(ctx context.Context, st *store.Store, name string, id uint) {
	var ok bool
	switch name {
	case store.Notices:
		ok = st.Notices.Delete(ctx, id)
	case store.Events:
		ok = st.Events.Delete(ctx, id)
	case store.Faculty:
		ok = st.Faculty.Delete(ctx, id)
	case store.Students:
		ok = st.Students.Delete(ctx, id)
	case store.Achievements:
		ok = st.Achievements.Delete(ctx, id)
	case store.Registrations:
		ok = st.DeleteRegistration(ctx, id)
	default:
		log.Fatalf("Unknown collection %q", name)
	}
	if !ok {
		log.Fatalf("Delete %s/%d failed", name, id)
	}
	fmt.Println("deleted")
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		log.Fatalf("Invalid id %q", s)
	}
	return uint(id)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Encode: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: portal [login <user> <pass>] (list <collection> | delete <collection> <id> | registrations [eventID]) ...")
	os.Exit(2)
}
