package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/assistant"

// Simplified DTOs for the script
type SendMessageRequest struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty"`
}

type SendMessageResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}

// The full happy path: greeting, needs, confirmation, four pipeline turns,
// results, feedback, farewell.
var script = []string{
	"你好",
	"关键词敏感肌保湿，类目护肤",
	"确认",
	"继续",
	"继续",
	"继续",
	"继续",
	"看一下结果",
	"很满意，谢谢",
	"再见",
}

func main() {
	color.Cyan("🚀 Viral Note Assistant Simulation Client\n")

	sessionId := ""
	for i, text := range script {
		color.Yellow("\n[%d] USER: %s", i+1, text)

		start := time.Now()
		reply, err := sendMessage(sessionId, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}

		sessionId = reply.SessionId
		color.Green("ASSISTANT (%v):", elapsed.Round(time.Millisecond))
		fmt.Println(reply.Response)
	}

	color.Cyan("\n✅ Simulation complete (session %s)", sessionId)
}

func sendMessage(sessionId, text string) (*SendMessageResponse, error) {
	payload := SendMessageRequest{
		Message:   text,
		SessionId: sessionId,
	}
	jsonBytes, _ := json.Marshal(payload)

	resp, err := http.Post(baseURL+"/chat", "application/json", bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res SendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
