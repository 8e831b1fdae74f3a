package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/client/api"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/client/navigation"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/client/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/client/session"
)

// Cliente de terminal del panel: login, bandeja de notificaciones en vivo y
// resolución de las accionables. Útil para probar el servidor sin el front.
func main() {
	serverURL := flag.String("server", "http://localhost:8080", "URL base del servidor")
	flag.Parse()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	storage := session.NewFileStorage(filepath.Join(home, ".trucknavi", "session.json"))

	var (
		apiClient *api.Client
		channel   *notification.Channel
		center    *notification.Center
	)

	store := session.NewStore(storage,
		func(userID string) {
			center = notification.NewCenter(apiClient, userID)
			channel = notification.NewChannel(*serverURL, center.HandleEvent)
			if err := channel.Connect(userID); err != nil {
				fmt.Fprintln(os.Stderr, "canal de notificaciones:", err)
			}
		},
		func() {
			if channel != nil {
				channel.Close()
			}
			if center != nil {
				center.Close()
			}
		},
	)
	apiClient = api.New(*serverURL, store.Token)

	if store.RestoreFromStorage() {
		u := store.User()
		fmt.Printf("sesión restaurada: %s (%s)\n", u.ID, u.Role)
	}

	repl(store, apiClient, &center)
}

func repl(store *session.Store, apiClient *api.Client, center **notification.Center) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("comandos: login <email> <password> | logout | routes | notifs | seen <id> | resolve <id> <accept|refuse|reject> | delete <id> | stats | quit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

		switch args[0] {
		case "login":
			if len(args) != 3 {
				fmt.Println("uso: login <email> <password>")
				break
			}
			out, err := apiClient.Login(ctx, args[1], args[2])
			if err != nil {
				fmt.Println("login:", err)
				break
			}
			_ = store.Login(session.User{ID: out.ID, Role: out.Role}, out.Token)
			fmt.Printf("conectado como %s, dashboard: %s\n", out.Role, navigation.DefaultDashboard(out.Role))

		case "logout":
			_ = apiClient.Logout(ctx)
			_ = store.Logout()
			fmt.Println("sesión cerrada")

		case "routes":
			for _, r := range navigation.RoutesFor(store.Role()) {
				if r.Type == navigation.EntryCollapse {
					fmt.Printf("  %-12s %s\n", r.Key, r.Path)
				}
			}

		case "notifs":
			if *center == nil {
				fmt.Println("sin sesión")
				break
			}
			if err := (*center).FetchInitial(ctx); err != nil {
				fmt.Println("fetch:", err)
				break
			}
			for _, n := range (*center).Notifications() {
				seen := " "
				if n.Seen {
					seen = "✓"
				}
				fmt.Printf("  [%s] %s %-20s %s\n", seen, n.ID, n.Type, n.Message)
			}

		case "seen", "resolve", "delete":
			if *center == nil || len(args) < 2 {
				fmt.Println("sin sesión o falta el id")
				break
			}
			var err error
			switch args[0] {
			case "seen":
				err = (*center).MarkSeen(ctx, args[1])
			case "delete":
				err = (*center).Delete(ctx, args[1])
			case "resolve":
				if len(args) != 3 {
					fmt.Println("uso: resolve <id> <accept|refuse|reject>")
					break
				}
				err = (*center).Resolve(ctx, args[1], args[2])
			}
			if err != nil {
				fmt.Println("error:", err)
			}

		case "stats":
			out, err := apiClient.DashboardStats(ctx)
			if err != nil {
				fmt.Println("stats:", err)
				break
			}
			fmt.Printf("  choferes=%d managers=%d viajes activos=%d pendientes=%d congés=%d\n",
				out.TotalDrivers, out.TotalManagers, out.ActiveTrips, out.PendingTrips, out.PendingLeaves)

		case "quit", "exit":
			cancel()
			return

		default:
			fmt.Println("comando desconocido")
		}
		cancel()
	}
}
