package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <session-id>",
	Short: "Follow a browsing session on a running api-server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		reconnect, _ := cmd.Flags().GetBool("reconnect")

		endpoint, err := websocketURL(api, "/sessions/"+url.PathEscape(args[0])+"/ws")
		if err != nil {
			return fmt.Errorf("ws url: %w", err)
		}

		for {
			err := runWebSocket(endpoint, cmd.OutOrStdout())
			if !reconnect {
				return err
			}
			log.Printf("[watch] disconnected: %v", err)
			time.Sleep(time.Second)
		}
	},
}

func init() {
	watchCmd.Flags().String("api", "http://localhost:8080", "API server base URL")
	watchCmd.Flags().Bool("reconnect", false, "Reconnect after the connection drops")
}

func runWebSocket(wsURL string, out io.Writer) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()
	log.Printf("[watch] connected to %s", wsURL)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return err
		}
		fmt.Fprintln(out, prettyEvent(msg))
	}
}

// prettyEvent indents JSON messages and passes anything else through.
func prettyEvent(msg []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(msg, &obj); err != nil {
		return string(msg)
	}
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return string(msg)
	}
	return string(b)
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}
