/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"cipherclimb/internal/ngram"
	"cipherclimb/mcpserver"
)

var (
	serveFrequencyFile string
	serveTransport     string
	servePort          string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing cipherclimb's solvers as tools",
	Long: `serve starts a Model Context Protocol server. caesar_shift is
always available; passing --frequency-file also registers
autoshift_solve and climb_solve against that n-gram language model.`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFrequencyFile, "frequency-file", "f", "", "n-gram count file produced by the ngrams command (optional)")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "stdio", "transport type: stdio (for MCP clients) or http")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "port to listen on when --transport=http")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	var model *ngram.Model
	if serveFrequencyFile != "" {
		f, err := os.Open(serveFrequencyFile)
		if err != nil {
			fmt.Printf("Could not open frequency file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		count, err := ngram.LoadCountFile(f)
		if err != nil {
			fmt.Printf("Could not load frequency file: %v\n", err)
			os.Exit(1)
		}
		model, err = ngram.NewModel(count)
		if err != nil {
			fmt.Printf("Could not build n-gram model: %v\n", err)
			os.Exit(1)
		}
	}

	server, err := mcpserver.New(model)
	if err != nil {
		fmt.Printf("Could not construct MCP server: %v\n", err)
		os.Exit(1)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "cipherclimb",
		Version: "1.0.0",
	}, nil)
	server.Register(mcpServer)

	switch serveTransport {
	case "stdio":
		fmt.Println("Starting cipherclimb MCP server on stdio...")
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	case "http":
		httpHandler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server { return mcpServer },
			nil,
		)
		http.Handle("/mcp", httpHandler)
		addr := ":" + servePort
		fmt.Printf("Starting cipherclimb MCP server on http://0.0.0.0%s/mcp\n", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown --transport %q (use stdio or http)\n", serveTransport)
		os.Exit(1)
	}
}
