// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/engine"
)

// Handler - HTTP entry points served by the https listener
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Tree(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// Source - what the details and tree pages report on
type Source interface {
	Info() engine.Info
	Print(io.Writer) int
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	source             Source
	maximumConnections uint64
	count              counter.Counter
}

// New - create the handler
//
// source may be nil in which case details reports only process data
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64, source Source) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		source:             source,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - restrict the named pages to the networks listed
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	// buffer the reply so a failed request can still change status
	buffer := &bytes.Buffer{}
	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: buffer})
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buffer.Bytes())
}

// Details - GET a summary of the tree and the process
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("details", r) {
		sendForbidden(w)
		return
	}
	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type theReply struct {
		Policy  string `json:"policy"`
		Count   int    `json:"count"`
		Height  int    `json:"height"`
		RPCs    uint64 `json:"rpcs"`
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
	}

	reply := theReply{
		Height:  -1,
		RPCs:    h.count.Uint64(),
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
	}
	if nil != h.source {
		info := h.source.Info()
		reply.Policy = info.Policy
		reply.Count = info.Count
		reply.Height = info.Height
	}

	sendReply(w, reply)
}

// Tree - GET the ASCII drawing of the tree
func (h *handler) Tree(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("tree", r) {
		sendForbidden(w)
		return
	}
	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	if nil == h.source {
		sendNotFound(w)
		return
	}

	buffer := &bytes.Buffer{}
	h.source.Print(buffer)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buffer.Bytes())
}

// check the remote address against the allowed networks for a page
func (h *handler) allowed(page string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil == err {
		ip := net.ParseIP(host)
		for _, network := range h.allow[page] {
			if nil != ip && network.Contains(ip) {
				return true
			}
		}
	}
	h.log.Warnf("Deny access: %q to: %s", r.RemoteAddr, page)
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
