/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package testutils starts a dashcore server for the integration tests and calls its API.
package testutils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	// TargetDir holds the built server and its home directory.
	TargetDir = "./target"
	// ServerBinary is the name of the built server binary.
	ServerBinary = "dashcore"
	// ServerPort is the port the integration server listens on.
	ServerPort = 8095
)

// ServerHome returns the home directory prepared for the integration server.
func ServerHome() string {
	return filepath.Join(TargetDir, "home")
}

// BuildServer compiles the server from the module root into the target directory.
func BuildServer(moduleRoot string) error {
	output, err := filepath.Abs(filepath.Join(TargetDir, ServerBinary))
	if err != nil {
		return err
	}
	cmd := exec.Command("go", "build", "-o", output, "./cmd/server")
	cmd.Dir = moduleRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// PrepareHome copies the repository directory of the module into a fresh server home and
// writes the integration deployment configuration.
func PrepareHome(moduleRoot string) error {
	home := ServerHome()
	if err := os.RemoveAll(home); err != nil {
		return err
	}
	if err := copyDirectory(filepath.Join(moduleRoot, "repository"), filepath.Join(home, "repository")); err != nil {
		return fmt.Errorf("failed to copy repository directory: %w", err)
	}
	_ = os.Remove(filepath.Join(home, "repository", "database", "runtimedb.db"))

	deployment := fmt.Sprintf(`server:
  hostname: "localhost"
  port: %d
database:
  runtime:
    type: "sqlite"
    path: "repository/database/runtimedb.db"
    max_open_conns: 1
    init_script: "repository/dbscripts/sqlite.sql"
wizard:
  definition_directory: "repository/resources/wizards"
  session_timeout: 600
collection:
  definition_directory: "repository/resources/collections"
  source: "file"
`, ServerPort)
	return os.WriteFile(filepath.Join(home, "repository", "conf", "deployment.yaml"), []byte(deployment), 0600)
}

// StartServer starts the built server against the prepared home.
func StartServer() (*exec.Cmd, error) {
	home, err := filepath.Abs(ServerHome())
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(filepath.Join(TargetDir, ServerBinary), "-home", home)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start server: %w", err)
	}
	return cmd, nil
}

// WaitForReady polls the readiness probe until it reports the server as up.
func WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(ServerURL() + "/health/readiness")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	return fmt.Errorf("server was not ready within %s", timeout)
}

// StopServer kills the server process.
func StopServer(cmd *exec.Cmd) {
	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}
}

func copyDirectory(src, dest string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0750)
		}
		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0600)
	})
}
