// internal/link/ble/ble.go
package ble

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"

	"github.com/tamzrod/droid-bridge/internal/link"
)

// Config is minimal transport config.
type Config struct {
	ServiceUUID        string
	CharacteristicUUID string
}

// Transport implements link.Transport over a BLE GATT write characteristic.
type Transport struct {
	adapter *bluetooth.Adapter
	service []bluetooth.UUID // nil => all services
	char    bluetooth.UUID

	mu     sync.Mutex
	seen   map[link.Address]bluetooth.Address // scan results by printable address
	active map[bluetooth.Address]*Connection
}

// New enables the default adapter and installs the disconnect handler.
func New(cfg Config) (*Transport, error) {
	var services []bluetooth.UUID
	if cfg.ServiceUUID != "" {
		svc, err := bluetooth.ParseUUID(cfg.ServiceUUID)
		if err != nil {
			return nil, errors.Wrapf(err, "ble: bad service uuid %q", cfg.ServiceUUID)
		}
		services = []bluetooth.UUID{svc}
	}
	char, err := bluetooth.ParseUUID(cfg.CharacteristicUUID)
	if err != nil {
		return nil, errors.Wrapf(err, "ble: bad characteristic uuid %q", cfg.CharacteristicUUID)
	}

	a := bluetooth.DefaultAdapter
	if err := a.Enable(); err != nil {
		return nil, errors.Wrap(err, "ble: enable adapter")
	}

	t := &Transport{
		adapter: a,
		service: services,
		char:    char,
		seen:    make(map[link.Address]bluetooth.Address),
		active:  make(map[bluetooth.Address]*Connection),
	}
	a.SetConnectHandler(t.onConnectionEvent)

	return t, nil
}

// onConnectionEvent is called by the adapter from its own goroutine.
func (t *Transport) onConnectionEvent(device bluetooth.Device, connected bool) {
	if connected {
		return
	}

	t.mu.Lock()
	c := t.active[device.Address]
	delete(t.active, device.Address)
	t.mu.Unlock()

	if c != nil {
		log.WithField("addr", device.Address.String()).Debug("BLE disconnect notification")
		c.markLost()
	}
}

// Discover scans until a device advertising name shows up or timeout elapses.
func (t *Transport) Discover(ctx context.Context, name string, timeout time.Duration) (link.Address, bool, error) {
	var (
		once  sync.Once
		found bluetooth.Address
		ok    bool
	)
	stop := func() {
		once.Do(func() { _ = t.adapter.StopScan() })
	}

	scanDone := make(chan error, 1)
	go func() {
		scanDone <- t.adapter.Scan(func(a *bluetooth.Adapter, r bluetooth.ScanResult) {
			if ok || r.LocalName() != name {
				return
			}
			found, ok = r.Address, true
			stop()
		})
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var err error
	select {
	case err = <-scanDone:
	case <-timer.C:
		stop()
		err = <-scanDone
	case <-ctx.Done():
		stop()
		<-scanDone
		return "", false, ctx.Err()
	}

	if err != nil {
		return "", false, errors.Wrap(err, "ble: scan")
	}
	if !ok {
		return "", false, nil
	}

	addr := link.Address(found.String())
	t.mu.Lock()
	t.seen[addr] = found
	t.mu.Unlock()

	return addr, true, nil
}

// Connect opens a GATT connection and resolves the command characteristic.
func (t *Transport) Connect(ctx context.Context, addr link.Address) (link.Connection, error) {
	t.mu.Lock()
	bt, ok := t.seen[addr]
	t.mu.Unlock()
	if !ok {
		return nil, errors.Errorf("ble: address %s was not discovered", addr)
	}

	device, err := t.adapter.Connect(bt, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, errors.Wrapf(err, "ble: connect %s", addr)
	}

	// tracked before discovery so a drop during resolve is not missed
	c := t.track(bt, device)

	char, err := t.resolve(device)
	if err != nil {
		t.untrack(bt, c)
		_ = device.Disconnect()
		return nil, err
	}

	if err := t.ready(bt, c, char); err != nil {
		_ = c.Disconnect()
		return nil, err
	}

	if ctx.Err() != nil {
		t.untrack(bt, c)
		_ = c.Disconnect()
		return nil, ctx.Err()
	}
	return c, nil
}

// track registers a connection for disconnect notifications.
func (t *Transport) track(bt bluetooth.Address, device bluetooth.Device) *Connection {
	c := &Connection{
		device: device,
		lost:   make(chan struct{}),
	}

	t.mu.Lock()
	t.active[bt] = c
	t.mu.Unlock()

	return c
}

func (t *Transport) untrack(bt bluetooth.Address, c *Connection) {
	t.mu.Lock()
	if t.active[bt] == c {
		delete(t.active, bt)
	}
	t.mu.Unlock()
}

// ready attaches the resolved characteristic. It fails with link.ErrLinkLost
// if the peer dropped while the connection was being set up.
func (t *Transport) ready(bt bluetooth.Address, c *Connection, char bluetooth.DeviceCharacteristic) error {
	c.mu.Lock()
	c.char = char
	c.mu.Unlock()

	select {
	case <-c.Lost():
		t.untrack(bt, c)
		return errors.Wrap(link.ErrLinkLost, "ble: dropped during setup")
	default:
		return nil
	}
}

func (t *Transport) resolve(device bluetooth.Device) (bluetooth.DeviceCharacteristic, error) {
	var none bluetooth.DeviceCharacteristic

	services, err := device.DiscoverServices(t.service)
	if err != nil {
		return none, errors.Wrap(err, "ble: discover services")
	}

	for _, srv := range services {
		chars, err := srv.DiscoverCharacteristics([]bluetooth.UUID{t.char})
		if err != nil {
			continue
		}
		if len(chars) > 0 {
			return chars[0], nil
		}
	}
	return none, errors.Errorf("ble: characteristic %s not found", t.char.String())
}
