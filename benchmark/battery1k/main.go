package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	battGrpc "liyu1981.xyz/battlogger/pkg/grpc"
	"liyu1981.xyz/battlogger/pkg/models"
)

var (
	maxBatteries = 1000
	httpHostPort = "127.0.0.1:3000"
	grpcHostPort = "127.0.0.1:3001"
)

var (
	grpcClient *battGrpc.Client
	rnd        = rand.New(rand.NewSource(time.Now().UnixNano()))
	rndMu      sync.Mutex

	limited atomic.Int64
	failed  atomic.Int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "battery1k",
		Short: "Create batteries and record test runs over HTTP and gRPC",
		Run:   func(*cobra.Command, []string) { run() },
	}
	rootCmd.Flags().IntVar(&maxBatteries, "batteries", maxBatteries, "number of batteries to create")
	rootCmd.Flags().StringVar(&httpHostPort, "http", httpHostPort, "HTTP server address")
	rootCmd.Flags().StringVar(&grpcHostPort, "grpc", grpcHostPort, "gRPC server address")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = battGrpc.NewClient(conn)
	fmt.Printf("gRPC client connected\n")

	modelID := createReferenceData()
	fmt.Printf("created reference data, model %v\n", modelID)

	batteryIDs := make([]string, maxBatteries)
	for i := range maxBatteries {
		batteryIDs[i] = "BENCH-" + uuid.NewString()
	}

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxBatteries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			postJSON("/api/create_battery", map[string]any{"batteryId": batteryIDs[i], "modelIdentifier": modelID})
			fmt.Printf("\rcreated battery %v", i)
		}()
	}
	wg.Wait()
	report("created batteries", maxBatteries, time.Since(startTime))

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxBatteries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doActions(batteryIDs[i])
		}()
	}
	wg.Wait()
	report("did actions", maxBatteries*3, time.Since(startTime))
}

func report(what string, actions int, used time.Duration) {
	fmt.Printf(
		"\r%v for %v batteries: used time=%v seconds, throughput=%v action/second, rate limited=%v, failed=%v\n",
		what, maxBatteries, used.Seconds(), float64(actions)/used.Seconds(), limited.Load(), failed.Load(),
	)
}

func createReferenceData() string {
	formFactorID := mustCreate("/api/create_formfactor", map[string]any{"name": "18650"})
	chemistryID := mustCreate("/api/create_chemistry", map[string]any{
		"name": "Lithium Nickel Manganese Cobalt Oxide", "shortName": "NMC", "nominalVoltage": 3.6,
	})
	return mustCreate("/api/create_model", map[string]any{
		"name": "BENCH-" + uuid.NewString()[:8], "designCapacity": 3000,
		"formFactorId": formFactorID, "chemistryId": chemistryID,
	})
}

func mustCreate(path string, payload map[string]any) string {
	body, code := postJSON(path, payload)
	if code != http.StatusCreated {
		log.Fatalf("%s returned %d: %s", path, code, body)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		log.Fatalf("%s returned malformed body: %v", path, err)
	}
	return created.ID
}

func postJSON(path string, payload map[string]any) ([]byte, int) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		failed.Add(1)
		fmt.Printf("\nerror: %v\n", err)
		return nil, 0
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	track(resp.StatusCode)
	return buf.Bytes(), resp.StatusCode
}

func track(code int) {
	switch {
	case code == http.StatusTooManyRequests:
		limited.Add(1)
	case code >= 300:
		failed.Add(1)
	}
}

func trackGrpc(err error) {
	if err == nil {
		return
	}
	if status.Code(err) == codes.ResourceExhausted {
		limited.Add(1)
		return
	}
	failed.Add(1)
	fmt.Printf("\nerror: %v\n", err)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func pause() {
	rndMu.Lock()
	d := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
	rndMu.Unlock()
	time.Sleep(d)
}

func doActions(batteryID string) {
	actions := []func(){
		genRecordTestRunAction(batteryID),
		genGetBatteryTestsAction(batteryID),
		genListBatteriesAction(),
	}
	for _, action := range actions {
		action()
		fmt.Printf("\rexecuted action for battery %v", batteryID)
		pause()
	}
}

func genRecordTestRunAction(batteryID string) func() {
	return func() {
		capacity := rndFloat64(2400.0, 3000.0, 1)
		timestamp := models.FormatTimestamp(time.Now())

		if flipCoin() {
			postJSON("/api/create_test_run", map[string]any{
				"batteryId": batteryID, "capacity": capacity, "timestamp": timestamp,
			})
			return
		}
		_, err := grpcClient.RecordTestRun(context.Background(), &models.TestRun{
			BatteryID: batteryID, Capacity: capacity, Timestamp: timestamp,
		})
		trackGrpc(err)
	}
}

func genGetBatteryTestsAction(batteryID string) func() {
	return func() {
		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/api/battery_tests/%s", httpHostPort, batteryID))
			if err != nil {
				failed.Add(1)
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			resp.Body.Close()
			track(resp.StatusCode)
			return
		}
		_, err := grpcClient.GetBatteryTests(context.Background(), batteryID)
		trackGrpc(err)
	}
}

func genListBatteriesAction() func() {
	return func() {
		_, err := grpcClient.ListBatteries(context.Background(), models.BatteryQuery{
			SortBy: "lastTestedTimestamp", Order: models.OrderDesc,
		})
		trackGrpc(err)
	}
}
