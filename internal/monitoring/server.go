package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"akshaya-backend/internal/services"
	"akshaya-backend/internal/timeutil"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Server is the operations sidecar: it exposes process and database
// stats on its own port and pushes alerts to connected websocket
// clients, including reconciliation alerts when today's books stop
// tallying.
type Server struct {
	db         *pgxpool.Pool
	reports    *services.ReportService
	port       int
	alerts     []Alert
	alertsMux  sync.RWMutex
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Alert

	lastTallied  bool
	lastFindings int
}

type Alert struct {
	ID        int       `json:"id"`
	Severity  string    `json:"severity"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Resolved  bool      `json:"resolved"`
}

type Stats struct {
	DatabaseStatus    string  `json:"database_status"`
	ActiveConnections int     `json:"active_connections"`
	ResponseTime      int64   `json:"response_time_ms"`
	ActiveAlerts      int     `json:"active_alerts"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	DiskPercent       float64 `json:"disk_percent"`
	MemoryUsed        string  `json:"memory_used"`
	MemoryTotal       string  `json:"memory_total"`
	DiskUsed          string  `json:"disk_used"`
	DiskTotal         string  `json:"disk_total"`
	DBSize            string  `json:"db_size"`
	Uptime            string  `json:"uptime"`
	TodayTallied      bool    `json:"today_tallied"`
	TodayTallyDiff    string  `json:"today_tally_diff"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewServer(db *pgxpool.Pool, reports *services.ReportService, port int) *Server {
	return &Server{
		db:          db,
		reports:     reports,
		port:        port,
		alerts:      make([]Alert, 0),
		clients:     make(map[*websocket.Conn]bool),
		broadcast:   make(chan Alert),
		lastTallied: true,
	}
}

func (s *Server) Start() {
	r := mux.NewRouter()

	r.HandleFunc("/ops", s.getStats).Methods("GET")
	r.HandleFunc("/ops/stats", s.getStats).Methods("GET")
	r.HandleFunc("/ops/alerts", s.getAlerts).Methods("GET")
	r.HandleFunc("/ops/ws", s.handleWebSocket)

	go s.handleBroadcast()
	go s.monitorHealth()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Monitoring] Operations server running on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats := s.collectStats()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) collectStats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	dbStatus := "healthy"
	if err != nil {
		dbStatus = "unhealthy"
	}

	var activeConns int
	s.db.QueryRow(ctx, "SELECT count(*) FROM pg_stat_activity").Scan(&activeConns)

	var dbSizeBytes int64
	s.db.QueryRow(ctx, "SELECT pg_database_size(current_database())").Scan(&dbSizeBytes)
	dbSize := formatBytes(uint64(dbSizeBytes))

	var uptimeSec int
	s.db.QueryRow(ctx, "SELECT EXTRACT(EPOCH FROM (NOW() - pg_postmaster_start_time()))::int").Scan(&uptimeSec)

	cpuPercents, _ := cpu.Percent(time.Second, false)
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")

	tallied := true
	tallyDiff := "0.00"
	if report, err := s.reports.GetDailyReport(ctx, timeutil.Now()); err == nil {
		tallied = report.Tally.IsTallied
		tallyDiff = report.Tally.Diff.StringFixed(2)
	}

	s.alertsMux.RLock()
	activeAlertCount := 0
	for _, alert := range s.alerts {
		if !alert.Resolved {
			activeAlertCount++
		}
	}
	s.alertsMux.RUnlock()

	return Stats{
		DatabaseStatus:    dbStatus,
		ActiveConnections: activeConns,
		ResponseTime:      responseTime,
		ActiveAlerts:      activeAlertCount,
		CPUPercent:        cpuPercent,
		MemoryPercent:     memStats.UsedPercent,
		DiskPercent:       diskStats.UsedPercent,
		MemoryUsed:        formatBytes(memStats.Used),
		MemoryTotal:       formatBytes(memStats.Total),
		DiskUsed:          formatBytes(diskStats.Used),
		DiskTotal:         formatBytes(diskStats.Total),
		DBSize:            dbSize,
		Uptime:            formatUptime(uptimeSec),
		TodayTallied:      tallied,
		TodayTallyDiff:    tallyDiff,
	}
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}

func formatUptime(seconds int) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func (s *Server) getAlerts(w http.ResponseWriter, r *http.Request) {
	s.alertsMux.RLock()
	defer s.alertsMux.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.alerts)
}

func (s *Server) raiseAlert(severity, alertType, message string) {
	alert := Alert{
		Severity:  severity,
		Type:      alertType,
		Message:   message,
		Timestamp: time.Now(),
	}

	s.alertsMux.Lock()
	alert.ID = len(s.alerts) + 1
	s.alerts = append(s.alerts, alert)
	s.alertsMux.Unlock()

	s.broadcast <- alert
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[Monitoring] WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	s.clientsMux.Lock()
	s.clients[conn] = true
	s.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			s.clientsMux.Lock()
			delete(s.clients, conn)
			s.clientsMux.Unlock()
			break
		}
	}
}

func (s *Server) handleBroadcast() {
	for alert := range s.broadcast {
		s.clientsMux.Lock()
		for client := range s.clients {
			err := client.WriteJSON(alert)
			if err != nil {
				client.Close()
				delete(s.clients, client)
			}
		}
		s.clientsMux.Unlock()
	}
}

func (s *Server) monitorHealth() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		start := time.Now()
		err := s.db.Ping(ctx)
		responseTime := time.Since(start).Milliseconds()

		if err != nil {
			s.raiseAlert("critical", "database_down", "Database is unreachable")
			cancel()
			continue
		}
		if responseTime > 1000 {
			s.raiseAlert("warning", "high_latency",
				fmt.Sprintf("Database response time: %dms", responseTime))
		}

		// Alert once on the tallied -> mismatch transition, not every tick.
		if report, err := s.reports.GetDailyReport(ctx, timeutil.Now()); err == nil {
			if !report.Tally.IsTallied && s.lastTallied {
				s.raiseAlert("warning", "tally_mismatch",
					fmt.Sprintf("Today's books do not tally: diff Rs. %s", report.Tally.Diff.StringFixed(2)))
			}
			s.lastTallied = report.Tally.IsTallied

			// Same transition rule for data-quality findings: alert on
			// new ones, stay quiet while the count holds steady.
			if len(report.Findings) > s.lastFindings {
				for _, f := range report.Findings[s.lastFindings:] {
					s.raiseAlert("warning", "reconciliation_finding",
						fmt.Sprintf("[%s] %s", f.Code, f.Message))
				}
			}
			s.lastFindings = len(report.Findings)
		}

		cancel()
	}
}
