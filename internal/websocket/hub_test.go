package websocket_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"invoicedesk/internal/model"
	ws "invoicedesk/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestHub_NotifyReachesConnectedPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(zap.NewNop())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ws.ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Notify(model.Notification{
		Level:     model.NotifySuccess,
		Event:     "generate",
		Message:   "Invoice generated successfully!",
		InvoiceID: "INV-240315-143005",
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var got model.Notification
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("payload is not a notification: %v", err)
	}
	if got.Event != "generate" || got.InvoiceID != "INV-240315-143005" || got.Level != model.NotifySuccess {
		t.Fatalf("unexpected notification %+v", got)
	}
}

func TestHub_NotifyDoesNotBlockWithoutRunLoop(t *testing.T) {
	hub := ws.NewHub(zap.NewNop())
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.Notify(model.Notification{Level: model.NotifyError, Event: "generate", Message: "x"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked with a full queue")
	}
}
