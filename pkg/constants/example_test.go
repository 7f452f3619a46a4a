package constants_test

import (
	"fmt"
	"net/http"

	"github.com/agentstation/pokedex/pkg/constants"
)

// Example demonstrates the query defaults shared by the CLI and the server
func Example() {
	fmt.Printf("page=%d pageSize=%d sortDirection=%s\n",
		constants.DefaultPage, constants.DefaultPageSize, constants.DefaultSortDirection)
	// Output: page=1 pageSize=25 sortDirection=asc
}

// Example_serverTimeouts demonstrates building an http.Server from the timeout constants
func Example_serverTimeouts() {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", constants.DefaultHost, constants.DefaultPort),
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	fmt.Printf("addr: %s\n", srv.Addr)
	fmt.Printf("read: %v write: %v idle: %v\n", srv.ReadTimeout, srv.WriteTimeout, srv.IdleTimeout)
	// Output:
	// addr: localhost:8080
	// read: 10s write: 10s idle: 1m0s
}
