package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngmachado/web3-hooks/application/services"
	"github.com/ngmachado/web3-hooks/application/usecases"
	"github.com/ngmachado/web3-hooks/domain/dto"
	"github.com/ngmachado/web3-hooks/infrastructure/metrics"
	"github.com/ngmachado/web3-hooks/infrastructure/notifier"
	"github.com/ngmachado/web3-hooks/infrastructure/queue"
	"github.com/ngmachado/web3-hooks/infrastructure/server"
	"github.com/ngmachado/web3-hooks/infrastructure/subgraph"
	"github.com/ngmachado/web3-hooks/test/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	minAmount = "100000000000000000000"
	delay     = 50 * time.Millisecond
	tokenA    = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	tokenB    = "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359"
)

// fakeSubgraph answers every query with the rows registered for the requested token.
type fakeSubgraph struct {
	mu       sync.Mutex
	requests []dto.GraphQLRequest
	rows     map[string][]string
	fail     map[string]bool
}

func (f *fakeSubgraph) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	token, _ := req.Variables["token"].(string)
	if f.fail[token] {
		http.Error(w, "indexer unavailable", http.StatusBadGateway)
		return
	}

	collection := "tokenUpgradedEvents"
	if strings.Contains(req.Query, "tokenDowngradedEvents") {
		collection = "tokenDowngradedEvents"
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(helpers.SubgraphEventsResponse(collection, f.rows[token]...)))
}

func (f *fakeSubgraph) snapshot() []dto.GraphQLRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dto.GraphQLRequest(nil), f.requests...)
}

type slackMessage struct {
	text string
	at   time.Time
}

// fakeSlack records every incoming-webhook post.
type fakeSlack struct {
	mu       sync.Mutex
	messages []slackMessage
}

func (f *fakeSlack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var msg dto.SlackMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.messages = append(f.messages, slackMessage{text: msg.Text, at: time.Now()})
	f.mu.Unlock()

	_, _ = w.Write([]byte("ok"))
}

func (f *fakeSlack) snapshot() []slackMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]slackMessage(nil), f.messages...)
}

type pipeline struct {
	router   http.Handler
	queue    *queue.MemoryQueue
	metrics  *metrics.Metrics
	subgraph *fakeSubgraph
	slack    *fakeSlack
	loop     *services.DrainLoop
}

func newPipeline(t *testing.T, sg *fakeSubgraph) *pipeline {
	gin.SetMode(gin.TestMode)
	logger := helpers.DiscardLogger()

	sgServer := httptest.NewServer(sg)
	t.Cleanup(sgServer.Close)

	slack := &fakeSlack{}
	slackServer := httptest.NewServer(slack)
	t.Cleanup(slackServer.Close)

	q := queue.NewMemoryQueue()
	m := metrics.NewMetrics()

	client := subgraph.NewGraphQLClient(sgServer.URL, 5*time.Second, logger)
	processor := usecases.NewProcessJobUseCase(
		subgraph.NewEventFetcher(client, logger),
		services.NewMessageFormatter("https://polygonscan.com"),
		notifier.NewSlackNotifier(slackServer.URL, "", 0, logger),
		nil,
		m,
		minAmount,
		logger,
	)

	return &pipeline{
		router: server.NewRouter(&server.Dependencies{
			Intake:  usecases.NewWebhookIntakeUseCase(q, m, logger),
			Logger:  logger,
			Metrics: m.Handler(),
		}),
		queue:    q,
		metrics:  m,
		subgraph: sg,
		slack:    slack,
		loop:     services.NewDrainLoop(q, processor, delay, m, logger),
	}
}

func (p *pipeline) post(t *testing.T, path string, body []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}

func (p *pipeline) run(t *testing.T) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func eventRow(token, tx, amount string, block int64) string {
	return helpers.SubgraphEventRow(tx+"-0", tx, token, helpers.RandomAddress().Hex(), amount, block, 1622550600)
}

func TestPipeline_UpgradeWebhookDeliversMessages(t *testing.T) {
	helpers.SkipIfShort(t)

	sg := &fakeSubgraph{rows: map[string][]string{
		tokenA: {
			eventRow(tokenA, "0x01", "150000000000000000000", 12345),
			eventRow(tokenA, "0x02", "250000000000000000000", 12346),
		},
	}}
	p := newPipeline(t, sg)

	p.post(t, "/tokenupgrade", helpers.WebhookBody("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", 12345))
	require.Equal(t, 1, p.queue.Len())

	p.run(t)

	helpers.AssertEventually(t, func() bool {
		return len(p.slack.snapshot()) == 2
	}, 2*time.Second, "two messages should reach slack")

	requests := p.subgraph.snapshot()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Query, "tokenUpgradedEvents")
	assert.Equal(t, tokenA, requests[0].Variables["token"])
	assert.Equal(t, minAmount, requests[0].Variables["minAmount"])
	assert.Equal(t, "12345", requests[0].Variables["blockNumber"])

	messages := p.slack.snapshot()
	assert.Contains(t, messages[0].text, "Token Upgrade")
	assert.Contains(t, messages[0].text, "Amount: 150\n")
	assert.Contains(t, messages[0].text, "/tx/0x01")
	assert.Contains(t, messages[1].text, "Amount: 250\n")
	assert.Contains(t, messages[1].text, "/tx/0x02")

	scrape := p.scrape(t)
	assert.Contains(t, scrape, `successful_webhooks{event_type="upgrade"} 1`)
	assert.Contains(t, scrape, `web3_hooks_jobs_processed_total{event_type="upgrade"} 1`)
	assert.Contains(t, scrape, "web3_hooks_notifications_sent_total 2")
}

func TestPipeline_OneJobPerCycle(t *testing.T) {
	helpers.SkipIfShort(t)

	sg := &fakeSubgraph{rows: map[string][]string{
		tokenA: {eventRow(tokenA, "0x0a", "100000000000000000000", 10)},
		tokenB: {eventRow(tokenB, "0x0b", "300000000000000000000", 20)},
	}}
	p := newPipeline(t, sg)

	p.post(t, "/tokenupgrade", helpers.WebhookBody(tokenA, 10))
	p.post(t, "/tokendowngrade", helpers.WebhookBody(tokenB, 20))
	require.Equal(t, 2, p.queue.Len())

	p.run(t)

	helpers.AssertEventually(t, func() bool {
		return len(p.slack.snapshot()) == 1
	}, 2*time.Second, "first job should be delivered")
	assert.Equal(t, 1, p.queue.Len())

	helpers.AssertEventually(t, func() bool {
		return len(p.slack.snapshot()) == 2
	}, 2*time.Second, "second job should be delivered on the next cycle")

	messages := p.slack.snapshot()
	assert.Contains(t, messages[0].text, "Token Upgrade")
	assert.Contains(t, messages[1].text, "Token Downgrade")
	assert.GreaterOrEqual(t, messages[1].at.Sub(messages[0].at), delay)

	requests := p.subgraph.snapshot()
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0].Query, "tokenUpgradedEvents")
	assert.Contains(t, requests[1].Query, "tokenDowngradedEvents")
}

func TestPipeline_FailedJobDoesNotStopLoop(t *testing.T) {
	helpers.SkipIfShort(t)

	sg := &fakeSubgraph{
		rows: map[string][]string{
			tokenB: {eventRow(tokenB, "0x0b", "300000000000000000000", 20)},
		},
		fail: map[string]bool{tokenA: true},
	}
	p := newPipeline(t, sg)

	p.post(t, "/tokenupgrade", helpers.WebhookBody(tokenA, 10))
	p.post(t, "/tokenupgrade", helpers.WebhookBody(tokenB, 20))

	p.run(t)

	helpers.AssertEventually(t, func() bool {
		return len(p.slack.snapshot()) == 1
	}, 2*time.Second, "job after the failed one should be delivered")

	assert.Len(t, p.subgraph.snapshot(), 2)
	assert.True(t, p.queue.IsEmpty())
	assert.Contains(t, p.slack.snapshot()[0].text, "/tx/0x0b")

	scrape := p.scrape(t)
	assert.Contains(t, scrape, `web3_hooks_jobs_failed_total{event_type="upgrade"} 1`)
	assert.Contains(t, scrape, `web3_hooks_jobs_processed_total{event_type="upgrade"} 1`)
}

func TestPipeline_MalformedPayloads(t *testing.T) {
	p := newPipeline(t, &fakeSubgraph{})

	p.post(t, "/tokenupgrade", []byte(`{"event":{"data":{"block":{"number":1}}}}`))
	p.post(t, "/tokendowngrade", []byte(`{}`))
	assert.True(t, p.queue.IsEmpty())

	req := httptest.NewRequest(http.MethodPost, "/tokenupgrade", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, p.queue.IsEmpty())

	scrape := p.scrape(t)
	assert.Contains(t, scrape, "failed_webhooks 1")
	assert.Contains(t, scrape, `successful_webhooks{event_type="downgrade"} 1`)
}

func (p *pipeline) scrape(t *testing.T) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}
