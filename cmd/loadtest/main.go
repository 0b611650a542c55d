// Command loadtest гоняет сценарии заказов против запущенного сервиса
// и печатает сводку по задержкам и кодам ответов.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

const (
	idempotencyHeader = "idempotency-key"
	scenarioMethod    = "scenario"
)

type loadMode string

const (
	// modeOrder создаёт заказ.
	modeOrder loadMode = "order"
	// modeOrderRead создаёт заказ и читает его с перерасчётом цен.
	modeOrderRead loadMode = "order-read"
	// modeCheckout дополнительно закрывает заказ продажей.
	modeCheckout loadMode = "checkout"
)

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	productID   int64
	quantity    int
	userID      int64
	email       string
	outputPath  string
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	ErrorRate float64          `json:"error_rate"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

type report struct {
	StartedAt         time.Time               `json:"started_at"`
	DurationSeconds   float64                 `json:"duration_seconds"`
	TotalScenarios    int64                   `json:"total_scenarios"`
	SuccessScenarios  int64                   `json:"success_scenarios"`
	FailedScenarios   int64                   `json:"failed_scenarios"`
	ErrorRate         float64                 `json:"error_rate"`
	RPS               float64                 `json:"rps"`
	ScenarioLatencyMs latencySummary          `json:"scenario_latency_ms"`
	Methods           map[string]methodReport `json:"methods"`
}

type methodStats struct {
	calls     int64
	failed    int64
	codes     map[string]int64
	latencies []float64
}

func (s *methodStats) report() methodReport {
	codesCopy := make(map[string]int64, len(s.codes))
	for code, count := range s.codes {
		codesCopy[code] = count
	}
	return methodReport{
		Calls:     s.calls,
		Success:   s.calls - s.failed,
		Failed:    s.failed,
		ErrorRate: ratio(s.failed, s.calls),
		Codes:     codesCopy,
		LatencyMs: buildLatencySummary(s.latencies),
	}
}

// collector копит результаты вызовов по имени метода.
type collector struct {
	mu      sync.Mutex
	methods map[string]*methodStats
}

func newCollector() *collector {
	return &collector{methods: make(map[string]*methodStats)}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.methods[method]
	if !ok {
		stats = &methodStats{codes: make(map[string]int64)}
		c.methods[method] = stats
	}
	stats.calls++
	if code != codes.OK {
		stats.failed++
	}
	stats.codes[code.String()]++
	stats.latencies = append(stats.latencies, float64(latency.Microseconds())/1000.0)
}

func (c *collector) buildReport(startedAt time.Time, duration time.Duration) report {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		Methods:         make(map[string]methodReport, len(c.methods)),
	}
	for name, stats := range c.methods {
		result.Methods[name] = stats.report()
	}

	if scenario, ok := result.Methods[scenarioMethod]; ok {
		result.TotalScenarios = scenario.Calls
		result.SuccessScenarios = scenario.Success
		result.FailedScenarios = scenario.Failed
		result.ErrorRate = scenario.ErrorRate
		result.ScenarioLatencyMs = scenario.LatencyMs
	}
	if duration > 0 {
		result.RPS = float64(result.TotalScenarios) / duration.Seconds()
	}
	return result
}

func parseConfig(args []string) (config, error) {
	var (
		cfg       config
		modeValue string
	)

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 400, "total scenarios in count mode; in duration mode only used when explicitly set")
	fs.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration (e.g. 10m)")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	fs.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&modeValue, "mode", string(modeOrder), "load mode: order | order-read | checkout")
	fs.Int64Var(&cfg.productID, "product-id", 1, "catalog product id put into every order")
	fs.IntVar(&cfg.quantity, "quantity", 1, "quantity of the product per order")
	fs.Int64Var(&cfg.userID, "user-id", 1, "user id placing the orders")
	fs.StringVar(&cfg.email, "email", "load@restock.local", "receipt email for orders and sales")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	switch {
	case cfg.duration < 0:
		return cfg, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when duration is not set")
	case cfg.duration > 0 && cfg.totalSet && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.productID <= 0:
		return cfg, errors.New("product-id must be > 0")
	case cfg.quantity <= 0 || cfg.quantity > math.MaxInt32:
		return cfg, errors.New("quantity must be a positive int32")
	case cfg.userID <= 0:
		return cfg, errors.New("user-id must be > 0")
	case strings.TrimSpace(cfg.email) == "":
		return cfg, errors.New("email is required")
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeOrder, modeOrderRead, modeCheckout:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]restockv1.OrderServiceClient, 0, cfg.connections)
	for range cfg.connections {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, restockv1.NewOrderServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	result, err := runLoad(context.Background(), cfg, clients)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test setup failed: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}
	if result.FailedScenarios > 0 {
		os.Exit(1)
	}
}

// runLoad создаёт стол для прогона и распределяет сценарии между клиентами.
func runLoad(ctx context.Context, cfg config, clients []restockv1.OrderServiceClient) (report, error) {
	if len(clients) == 0 {
		return report{}, errors.New("at least one client is required")
	}

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	tableName := "load-" + runID

	setupCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	_, err := clients[0].CreateTable(setupCtx, &restockv1.CreateTableRequest{Name: tableName, Quantity: 4, State: "available"})
	cancel()
	if err != nil {
		return report{}, fmt.Errorf("create load table: %w", err)
	}

	col := newCollector()
	jobs := make(chan int, cfg.concurrency*2)
	var wg sync.WaitGroup
	for workerID := range cfg.concurrency {
		client := clients[workerID%len(clients)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				_ = runScenario(ctx, client, cfg, scenario{index: id, runID: runID, tableName: tableName}, col)
			}
		}()
	}

	dispatchJobs(jobs, cfg)
	wg.Wait()
	return col.buildReport(startedAt, time.Since(startedAt)), nil
}

func dispatchJobs(jobs chan<- int, cfg config) {
	defer close(jobs)

	if cfg.duration <= 0 {
		for i := range cfg.total {
			jobs <- i
		}
		return
	}

	timer := time.NewTimer(cfg.duration)
	defer timer.Stop()
	for i := 0; !cfg.totalSet || i < cfg.total; i++ {
		select {
		case <-timer.C:
			return
		case jobs <- i:
		}
	}
}

type scenario struct {
	index     int
	runID     string
	tableName string
}

func (s scenario) key(step string) string {
	return fmt.Sprintf("lt-%s-%s-%d", step, s.runID, s.index)
}

func runScenario(ctx context.Context, client restockv1.OrderServiceClient, cfg config, sc scenario, col *collector) (err error) {
	start := time.Now()
	defer func() { col.record(scenarioMethod, time.Since(start), grpcCode(err)) }()

	products := []*restockv1.OrderItem{{ProductId: cfg.productID, Quantity: int32(cfg.quantity)}}
	created, err := call(ctx, col, "CreateOrder", cfg.timeout, sc.key("order"), func(ctx context.Context) (*restockv1.CreateOrderResponse, error) {
		return client.CreateOrder(ctx, &restockv1.CreateOrderRequest{
			Products:  products,
			UserId:    cfg.userID,
			NameTable: sc.tableName,
			Email:     cfg.email,
		})
	})
	if err != nil {
		return err
	}
	if created.Id == 0 {
		return status.Error(codes.Internal, "create response returned empty order id")
	}
	if cfg.mode == modeOrder {
		return nil
	}

	got, err := call(ctx, col, "GetOrder", cfg.timeout, "", func(ctx context.Context) (*restockv1.GetOrderResponse, error) {
		return client.GetOrder(ctx, &restockv1.GetOrderRequest{OrderId: created.Id})
	})
	if err != nil {
		return err
	}
	if cfg.mode == modeOrderRead {
		return nil
	}

	order := got.Order
	if order == nil || order.User == nil {
		return status.Error(codes.Internal, "get order response is missing order or user")
	}
	_, err = call(ctx, col, "CreateSale", cfg.timeout, sc.key("sale"), func(ctx context.Context) (*restockv1.CreateSaleResponse, error) {
		return client.CreateSale(ctx, &restockv1.CreateSaleRequest{
			UserName:   order.User.Name,
			TableName:  sc.tableName,
			Date:       time.Now().UTC().Format(time.DateOnly),
			TotalPrice: order.TotalPrice,
			Products:   order.Products,
			Email:      cfg.email,
		})
	})
	return err
}

// call выполняет RPC с таймаутом и, если задан key, с ключом идемпотентности.
func call[Resp any](ctx context.Context, col *collector, method string, timeout time.Duration, key string, fn func(context.Context) (*Resp, error)) (*Resp, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if key != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)
	}

	resp, err := fn(ctx)
	col.record(method, time.Since(start), grpcCode(err))
	return resp, err
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func writeJSONReport(path string, result report) error {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == string(filepath.Separator) {
		return errors.New("output path must point to a file")
	}
	if cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path must be inside current directory: %s", path)
	}

	// #nosec G304 -- path is an explicit CLI output parameter for local load-test reports.
	file, err := os.Create(cleanPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func printReport(w io.Writer, result report, cfg config) {
	_, _ = fmt.Fprintln(w, "Load test summary")
	_, _ = fmt.Fprintf(w, "mode=%s run=%s total=%d success=%d failed=%d error_rate=%.4f\n",
		cfg.mode, runTarget(cfg), result.TotalScenarios, result.SuccessScenarios, result.FailedScenarios, result.ErrorRate)
	_, _ = fmt.Fprintf(w, "duration=%.2fs rps=%.2f\n", result.DurationSeconds, result.RPS)
	l := result.ScenarioLatencyMs
	_, _ = fmt.Fprintf(w, "scenario latency ms: min=%.2f avg=%.2f p50=%.2f p95=%.2f p99=%.2f max=%.2f\n",
		l.Min, l.Avg, l.P50, l.P95, l.P99, l.Max)

	names := make([]string, 0, len(result.Methods))
	for name := range result.Methods {
		if name != scenarioMethod {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		stats := result.Methods[name]
		_, _ = fmt.Fprintf(w, "%s: calls=%d success=%d failed=%d error_rate=%.4f p95=%.2fms\n",
			name, stats.Calls, stats.Success, stats.Failed, stats.ErrorRate, stats.LatencyMs.P95)
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}

func buildLatencySummary(values []float64) latencySummary {
	if len(values) == 0 {
		return latencySummary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}
	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P50: percentile(sorted, 50),
		P95: percentile(sorted, 95),
		P99: percentile(sorted, 99),
	}
}

// percentile считает перцентиль с линейной интерполяцией между соседними рангами.
func percentile(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := (p / 100.0) * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*weight
}

func ratio(failed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(failed) / float64(total)
}
