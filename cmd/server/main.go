package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"log"
	"os"
	"time"

	"crypto/x509"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"cityforge/internal/server"
	"cityforge/internal/wfc"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
	catalogPath = "assets/catalog.json"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	catalog, err := wfc.LoadCatalogOrDefault(osfs.New("."), catalogPath)
	if err != nil {
		log.Printf("Could not load catalog from %s: %v — using built-in catalog", catalogPath, err)
	}
	log.Printf("Catalog ready: %d tiles", len(catalog.Tiles))

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	baseSeed := int(time.Now().UnixNano() % 1_000_000)
	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, baseSeed, catalog)
	log.Printf("Starting Cityforge preview — connect with: ssh -p %s localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
