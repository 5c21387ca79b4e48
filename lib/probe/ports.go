// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PortState classifies one checked port.
type PortState string

const (
	// PortFree means nothing is listening on the port, so the stack
	// can claim it.
	PortFree PortState = "free"

	// PortListening means a process is already bound to the port.
	PortListening PortState = "listening"

	// PortUnknown means no detection technique was available.
	PortUnknown PortState = "unknown"
)

// Port is the check result for one (port, label) pair.
type Port struct {
	Port  int       `json:"port"`
	Label string    `json:"label"`
	State PortState `json:"state"`
}

// portSpec pairs a stack port with the service that wants it.
type portSpec struct {
	port  int
	label string
}

// stackPorts is the fixed list of ports the development stack binds.
// The order here is the report order.
var stackPorts = []portSpec{
	{5432, "postgres"},
	{6379, "redis"},
	{9092, "kafka"},
	{2181, "zookeeper"},
	{5672, "rabbitmq"},
	{8080, "gateway"},
	{3000, "grafana"},
	{9090, "prometheus"},
	{9000, "minio"},
	{8025, "mailhog"},
}

// probePorts tests each stack port for a listening socket. Detection
// falls through an ordered ladder of techniques: the kernel's socket
// table under /proc, then ss, then netstat. When every technique is
// unavailable, each port reports [PortUnknown] rather than guessing.
// Ports are classified independently — a bound port never blocks
// evaluation of the rest.
func probePorts(ctx context.Context, runner Runner, procRoot string) []Port {
	listeners, err := listenersFromProc(procRoot)
	if err != nil {
		listeners, err = listenersFromSS(ctx, runner)
	}
	if err != nil {
		listeners, err = listenersFromNetstat(ctx, runner)
	}

	ports := make([]Port, len(stackPorts))
	for i, spec := range stackPorts {
		ports[i] = Port{Port: spec.port, Label: spec.label}
		switch {
		case err != nil:
			ports[i].State = PortUnknown
		case listeners[spec.port]:
			ports[i].State = PortListening
		default:
			ports[i].State = PortFree
		}
	}
	return ports
}

// listenersFromProc reads the kernel socket tables at
// <procRoot>/net/tcp and net/tcp6 and returns the set of ports in
// LISTEN state. Local addresses are hex "ADDR:PORT" pairs; LISTEN is
// state 0A.
func listenersFromProc(procRoot string) (map[int]bool, error) {
	listeners := make(map[int]bool)
	read := 0

	for _, table := range []string{"net/tcp", "net/tcp6"} {
		data, err := os.ReadFile(filepath.Join(procRoot, table))
		if err != nil {
			continue
		}
		read++
		parseProcSocketTable(string(data), listeners)
	}

	if read == 0 {
		return nil, fmt.Errorf("no socket tables under %s", procRoot)
	}
	return listeners, nil
}

// parseProcSocketTable adds LISTEN-state local ports from one socket
// table to listeners.
func parseProcSocketTable(data string, listeners map[int]bool) {
	for _, line := range strings.SplitAfter(data, "\n") {
		fields := strings.Fields(line)
		// sl local_address rem_address st ...
		if len(fields) < 4 || fields[3] != "0A" {
			continue
		}
		_, portHex, found := strings.Cut(fields[1], ":")
		if !found {
			continue
		}
		port, err := strconv.ParseInt(portHex, 16, 32)
		if err != nil {
			continue
		}
		listeners[int(port)] = true
	}
}

// listenersFromSS shells out to `ss -ltn` and parses the local
// address column.
func listenersFromSS(ctx context.Context, runner Runner) (map[int]bool, error) {
	output, err := runner.CombinedOutput(ctx, "ss", "-ltn")
	if err != nil {
		return nil, err
	}

	listeners := make(map[int]bool)
	for _, line := range strings.SplitAfter(output, "\n") {
		fields := strings.Fields(line)
		// State Recv-Q Send-Q Local-Address:Port Peer-Address:Port
		if len(fields) < 4 || fields[0] != "LISTEN" {
			continue
		}
		if port, ok := portFromAddress(fields[3]); ok {
			listeners[port] = true
		}
	}
	return listeners, nil
}

// listenersFromNetstat shells out to `netstat -an` and collects LISTEN
// lines. This is the generic fallback for hosts without /proc or ss.
func listenersFromNetstat(ctx context.Context, runner Runner) (map[int]bool, error) {
	output, err := runner.CombinedOutput(ctx, "netstat", "-an")
	if err != nil {
		return nil, err
	}

	listeners := make(map[int]bool)
	for _, line := range strings.SplitAfter(output, "\n") {
		if !strings.Contains(line, "LISTEN") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		if port, ok := portFromAddress(fields[3]); ok {
			listeners[port] = true
		}
	}
	return listeners, nil
}

// portFromAddress extracts the port from a local address like
// "0.0.0.0:5432", "[::]:5432", or BSD netstat's "*.5432". The port is
// whatever follows the last separator.
func portFromAddress(address string) (int, bool) {
	separator := strings.LastIndexAny(address, ":.")
	if separator < 0 || separator == len(address)-1 {
		return 0, false
	}
	port, err := strconv.Atoi(address[separator+1:])
	if err != nil {
		return 0, false
	}
	return port, true
}
