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

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/asgardeo/dashcore/tests/integration/testutils"
)

func main() {
	moduleRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		fmt.Printf("Failed to resolve module root: %v\n", err)
		os.Exit(1)
	}

	// Step 1: Build the server.
	if err := testutils.BuildServer(moduleRoot); err != nil {
		fmt.Printf("Failed to build server: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Prepare the server home with the bundled resources.
	if err := testutils.PrepareHome(moduleRoot); err != nil {
		fmt.Printf("Failed to prepare server home: %v\n", err)
		os.Exit(1)
	}

	// Step 3: Start the server and wait for it to become ready.
	serverCmd, err := testutils.StartServer()
	if err != nil {
		fmt.Printf("Failed to start server: %v\n", err)
		os.Exit(1)
	}
	if err := testutils.WaitForReady(15 * time.Second); err != nil {
		fmt.Printf("Server did not start: %v\n", err)
		testutils.StopServer(serverCmd)
		os.Exit(1)
	}

	// Step 4: Run all tests.
	err = runTests()
	testutils.StopServer(serverCmd)
	if err != nil {
		fmt.Printf("there are test failures: %v\n", err)
		os.Exit(1)
	}
}

func runTests() error {
	// The server and the test suite are separate processes, so cached results are never valid.
	cmd := exec.Command("go", "clean", "-testcache")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to clean test cache: %w", err)
	}

	if _, err := exec.LookPath("gotestsum"); err == nil {
		fmt.Println("Running integration tests using gotestsum...")
		cmd = exec.Command("gotestsum", "--format", "testname", "--", "-tags=integration", "-p=1", "./...")
	} else {
		fmt.Println("Running integration tests using go test...")
		cmd = exec.Command("go", "test", "-tags=integration", "-p=1", "-v", "./...")
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
