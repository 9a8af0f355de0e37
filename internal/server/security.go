// Package server provides listeners for the API servers.
package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/gocalendar/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// TLSListener opens listeners that terminate TLS with a fixed key pair.
type TLSListener struct {
	config *tls.Config
}

// NewTLSListener loads the key pair so a bad certificate fails at startup.
func NewTLSListener(certFileName, privateKeyFileName string) (*TLSListener, error) {
	cert, err := tls.LoadX509KeyPair(certFileName, privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return &TLSListener{
		config: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}, nil
}

// Listen announces on network and addr and wraps accepted connections in TLS.
func (l *TLSListener) Listen(network, addr string) (net.Listener, error) {
	return tls.Listen(network, addr, l.config.Clone())
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(network, addr string) (net.Listener, error) {
	return net.Listen(network, addr)
}

// NewSecurityLayer picks TLS or plain listeners.
func NewSecurityLayer(enableHTTPS bool, certFileName, privateKeyFileName string) (model.SecurityLayer, error) {
	if !enableHTTPS {
		return NewPlainListener(), nil
	}
	return NewTLSListener(certFileName, privateKeyFileName)
}
