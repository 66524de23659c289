// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/rpc/handler"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
	servers         []*http.Server
}

// Serve - start the HTTPS servers
//
// each address is bound before returning so requests can be made
// immediately
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen("tcp", listen)
		if err != nil {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Addr:           listen,
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.tlsConfig)
		go func() {
			err := s.Serve(tlsListener)
			h.log.Infof("%s terminated: %s", httpsLogName, err)
		}()
	}

	return nil
}

// Close - stop all HTTPS servers
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	var first error
	for _, s := range h.servers {
		if err := s.Close(); nil != err && nil == first {
			first = err
		}
	}
	h.servers = nil
	return first
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// NewHTTPS - create the HTTPS listener
//
// returns nil, nil when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	listen := append([]string{}, configuration.Listen...)
	if _, err := parseListenAddress(listen, log); nil != err {
		return nil, err
	}

	tlsConfig = tlsConfig.Clone()
	tlsConfig.NextProtos = []string{"http/1.1"}

	h := httpsListener{
		log:             log,
		listenIPAndPort: listen,
		tlsConfig:       tlsConfig,
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("%s allow: %q error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	h.mux = http.NewServeMux()
	h.mux.HandleFunc("/bintree/rpc", hdlr.RPC)
	h.mux.HandleFunc("/bintree/details", hdlr.Details)
	h.mux.HandleFunc("/bintree/tree", hdlr.Tree)
	h.mux.HandleFunc("/", hdlr.Root)

	return &h, nil
}
