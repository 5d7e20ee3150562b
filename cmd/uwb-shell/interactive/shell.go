// Package interactive provides the interactive command-line interface
// of uwb-shell.
package interactive

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/uwbcore/uwb-go/pkg/bridge"
	"github.com/uwbcore/uwb-go/pkg/config"
	"github.com/uwbcore/uwb-go/pkg/native"
	"github.com/uwbcore/uwb-go/pkg/uci"
	"github.com/uwbcore/uwb-go/pkg/version"
)

// mtCommand is the UCI message type of a command packet.
const mtCommand = 1

// Shell handles interactive mode for uwb-shell.
type Shell struct {
	cfg  *config.Config
	m    *native.Manager
	rl   *readline.Instance
	out  io.Writer
	chip string
}

// New creates a shell with a readline prompt. Attach must be called
// before Run.
func New(cfg *config.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "uwb> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := newShell(cfg, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(cfg *config.Config, out io.Writer) *Shell {
	return &Shell{cfg: cfg, out: out, chip: cfg.DefaultChip}
}

// Stdout returns a writer that properly coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	if s.rl == nil {
		return s.out
	}
	return s.rl.Stderr()
}

// Attach binds the shell to m and prints its notifications.
func (s *Shell) Attach(m *native.Manager) {
	s.m = m
	m.SetListener(NewPrinter(s.out))
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Exec(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns false when the shell should exit.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "init":
		s.result("initialize", s.m.Initialize())
	case "deinit":
		s.result("deinitialize", s.m.Deinitialize())
	case "create":
		s.cmdCreate(args)
	case "destroy":
		s.result("destroy", s.m.DispatcherDestroy())
	case "open":
		s.result("open "+s.target(args), s.m.DoInitialize(s.target(args)))
	case "close":
		s.result("close "+s.target(args), s.m.DoDeinitialize(s.target(args)))

	case "chip":
		s.cmdChip(args)
	case "chips":
		s.cmdChips()

	case "reset":
		s.status("reset", s.m.DeviceReset(int8(uci.ResetConfigUwbsReset), s.chip))
	case "session-init", "si":
		s.cmdSessionInit(args)
	case "session-deinit", "sd":
		s.withSession(args, func(id int32) { s.status("session-deinit", s.m.SessionDeinit(id, s.chip)) })
	case "state":
		s.withSession(args, func(id int32) { s.cmdState(id) })
	case "count":
		s.cmdCount()
	case "set-config", "sc":
		s.cmdSetConfig(args)
	case "get-config", "gc":
		s.cmdGetConfig(args)
	case "start":
		s.withSession(args, func(id int32) { s.status("start", s.m.RangingStart(id, s.chip)) })
	case "stop":
		s.withSession(args, func(id int32) { s.status("stop", s.m.RangingStop(id, s.chip)) })
	case "multicast", "mc":
		s.cmdMulticast(args)
	case "dt-tag":
		s.cmdDtTag(args)
	case "send":
		s.cmdSend(args)

	case "caps":
		s.cmdCaps()
	case "country":
		s.cmdCountry(args)
	case "vendor":
		s.cmdVendor(args)
	case "power":
		s.cmdPower()

	case "logmode":
		s.cmdLogMode(args)
	case "layout":
		s.cmdLayout()

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
UWB Shell Commands:
  Lifecycle:
    init                      - Create the dispatcher and open all chips
    deinit                    - Close all chips and destroy the dispatcher
    create [chip...]          - Create a dispatcher for the given chips
    destroy                   - Destroy the dispatcher
    open [chip]               - Open a chip
    close [chip]              - Close a chip
    chip [id]                 - Show or select the current chip
    chips                     - List configured chips

  Sessions:
    session-init <id> [type]  - Initialize a session (type in hex, default 0)
    session-deinit <id>       - Deinitialize a session
    state <id>                - Show session state
    count                     - Show session count
    set-config <id> <t=v>...  - Set app configs (type and value in hex)
    get-config <id> [t...]    - Get app configs
    start <id> / stop <id>    - Start or stop ranging
    multicast <id> <add|remove> <addr>...  - Update the controlee list
    dt-tag <id> <indexes>     - Activate DL-TDoA tag rounds (hex bytes)
    send <id> <addr> <data> [seq]          - Send data (hex address and payload)

  Device:
    reset                     - Reset the chip
    caps                      - Show capability TLVs
    country <CC>              - Set country code
    vendor <gid> <oid> [hex]  - Send a raw vendor command
    power                     - Show power stats

  General:
    logmode <mode>            - Set capture mode: disabled, filtered, unfiltered
    layout                    - Validate the callback layout
    help                      - Show this help
    quit                      - Exit shell`)
}

func (s *Shell) target(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.chip
}

func (s *Shell) result(op string, ok bool) {
	if ok {
		fmt.Fprintf(s.out, "%s: ok\n", op)
	} else {
		fmt.Fprintf(s.out, "%s: failed\n", op)
	}
}

func (s *Shell) status(op string, st int8) {
	fmt.Fprintf(s.out, "%s: %s\n", op, uci.StatusCode(uint8(st)))
}

func (s *Shell) withSession(args []string, f func(id int32)) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: <command> <session-id>")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	f(id)
}

func (s *Shell) cmdCreate(args []string) {
	chips := args
	if len(chips) == 0 {
		chips = s.m.Chips()
	}
	h := s.m.DispatcherNew(chips)
	if h == 0 {
		fmt.Fprintln(s.out, "create: failed")
		return
	}
	fmt.Fprintf(s.out, "create: handle 0x%016X\n", uint64(h))
}

func (s *Shell) cmdChip(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Current chip: %s\n", s.chip)
		return
	}
	s.chip = args[0]
	fmt.Fprintf(s.out, "Current chip: %s\n", s.chip)
}

func (s *Shell) cmdChips() {
	for _, id := range s.cfg.ChipIDs() {
		marker := " "
		if id == s.chip {
			marker = "*"
		}
		if pos, ok := s.cfg.Position(id); ok {
			fmt.Fprintf(s.out, "%s %s (%.2f, %.2f, %.2f)\n", marker, id, pos.X, pos.Y, pos.Z)
		} else {
			fmt.Fprintf(s.out, "%s %s\n", marker, id)
		}
	}
}

func (s *Shell) cmdSessionInit(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: session-init <id> [type]")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	var typ uint64
	if len(args) > 1 {
		if typ, err = strconv.ParseUint(args[1], 16, 8); err != nil {
			fmt.Fprintf(s.out, "Invalid session type: %v\n", err)
			return
		}
	}
	s.status("session-init", s.m.SessionInit(id, int8(uint8(typ)), s.chip))
}

func (s *Shell) cmdState(id int32) {
	st := s.m.GetSessionState(id, s.chip)
	if st < 0 {
		fmt.Fprintln(s.out, "state: failed")
		return
	}
	fmt.Fprintf(s.out, "session %d: %s\n", id, uci.SessionState(st))
}

func (s *Shell) cmdCount() {
	n := s.m.GetSessionCount(s.chip)
	if n < 0 {
		fmt.Fprintln(s.out, "count: failed")
		return
	}
	fmt.Fprintf(s.out, "sessions: %d of %d\n", n, s.m.GetMaxSessionNumber())
}

func (s *Shell) cmdSetConfig(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set-config <id> <type=value>...")
		fmt.Fprintln(s.out, "  Example: set-config 7 04=09 11=01")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	tlvs, err := parseAppConfigs(args[1:])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid config: %v\n", err)
		return
	}
	data, err := uci.EncodeAppConfigTlvs(tlvs)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid config: %v\n", err)
		return
	}

	res := s.m.SetAppConfigurations(id, int32(len(tlvs)), data, s.chip)
	if res == nil {
		fmt.Fprintln(s.out, "set-config: failed")
		return
	}
	fmt.Fprintf(s.out, "set-config: %s\n", uci.StatusCode(uint8(res.Status)))
	for i := 0; i+1 < len(res.Data); i += 2 {
		fmt.Fprintf(s.out, "  0x%02X: %s\n", res.Data[i], uci.StatusCode(res.Data[i+1]))
	}
}

func (s *Shell) cmdGetConfig(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get-config <id> [type...]")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	types := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		t, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid config type: %v\n", err)
			return
		}
		types = append(types, byte(t))
	}

	res := s.m.GetAppConfigurations(id, types, s.chip)
	if res == nil {
		fmt.Fprintln(s.out, "get-config: failed")
		return
	}
	s.printTlvs("get-config", res)
}

func (s *Shell) cmdCaps() {
	res := s.m.GetCapsInfo(s.chip)
	if res == nil {
		fmt.Fprintln(s.out, "caps: failed")
		return
	}
	s.printTlvs("caps", res)
}

func (s *Shell) printTlvs(op string, res *native.TlvData) {
	fmt.Fprintf(s.out, "%s: %s, %d parameters\n", op, uci.StatusCode(uint8(res.Status)), res.Count)
	data := res.Data
	for len(data) >= 2 && len(data) >= 2+int(data[1]) {
		n := int(data[1])
		fmt.Fprintf(s.out, "  0x%02X = %s\n", data[0], hex.EncodeToString(data[2:2+n]))
		data = data[2+n:]
	}
}

func (s *Shell) cmdMulticast(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "Usage: multicast <id> <add|remove> <addr>...")
		fmt.Fprintln(s.out, "  Example: multicast 7 add 0a01 0a02")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	var action uci.MulticastAction
	switch strings.ToLower(args[1]) {
	case "add":
		action = uci.MulticastActionAdd
	case "remove":
		action = uci.MulticastActionRemove
	default:
		fmt.Fprintf(s.out, "Invalid action: %s (must be add or remove)\n", args[1])
		return
	}
	addrs := make([]int16, 0, len(args)-2)
	for _, a := range args[2:] {
		v, err := strconv.ParseUint(a, 16, 16)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid address: %v\n", err)
			return
		}
		addrs = append(addrs, int16(uint16(v)))
	}
	subs := make([]int32, len(addrs))

	st := s.m.ControllerMulticastListUpdate(id, int8(action), int8(len(addrs)), addrs, subs, nil, s.chip)
	s.status("multicast", st)
}

func (s *Shell) cmdDtTag(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: dt-tag <id> <indexes>")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	indexes, err := hex.DecodeString(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid indexes: %v\n", err)
		return
	}
	res := s.m.SessionUpdateActiveRoundsDtTag(id, indexes, s.chip)
	if res == nil {
		fmt.Fprintln(s.out, "dt-tag: failed")
		return
	}
	fmt.Fprintf(s.out, "dt-tag: %s, %d rounds not activated\n", uci.StatusCode(uint8(res.Status)), res.Count)
}

func (s *Shell) cmdSend(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.out, "Usage: send <id> <addr> <data> [seq]")
		fmt.Fprintln(s.out, "  Example: send 7 0a01 68656c6c6f 1")
		return
	}
	id, err := parseSessionID(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid session id: %v\n", err)
		return
	}
	addr, err := hex.DecodeString(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid address: %v\n", err)
		return
	}
	payload, err := hex.DecodeString(args[2])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid payload: %v\n", err)
		return
	}
	var seq int64
	if len(args) > 3 {
		if seq, err = strconv.ParseInt(args[3], 10, 32); err != nil {
			fmt.Fprintf(s.out, "Invalid sequence number: %v\n", err)
			return
		}
	}
	s.status("send", s.m.SendData(id, addr, 0, int32(seq), payload, s.chip))
}

func (s *Shell) cmdCountry(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: country <CC>")
		return
	}
	s.status("country", s.m.SetCountryCode([]byte(strings.ToUpper(args[0])), s.chip))
}

func (s *Shell) cmdVendor(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: vendor <gid> <oid> [hex]")
		fmt.Fprintln(s.out, "  Example: vendor 0e 01 0102")
		return
	}
	gid, err := strconv.ParseUint(args[0], 16, 8)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid gid: %v\n", err)
		return
	}
	oid, err := strconv.ParseUint(args[1], 16, 8)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid oid: %v\n", err)
		return
	}
	var payload []byte
	if len(args) > 2 {
		if payload, err = hex.DecodeString(args[2]); err != nil {
			fmt.Fprintf(s.out, "Invalid payload: %v\n", err)
			return
		}
	}

	resp := s.m.SendRawVendorCmd(mtCommand, int32(gid), int32(oid), payload, s.chip)
	if !resp.Valid() {
		fmt.Fprintln(s.out, "vendor: failed")
		return
	}
	fmt.Fprintf(s.out, "vendor %02X/%02X: %s\n", resp.GID, resp.OID, hex.EncodeToString(resp.Payload))
}

func (s *Shell) cmdPower() {
	ps := s.m.GetPowerStats(s.chip)
	if ps == nil {
		fmt.Fprintln(s.out, "power: failed")
		return
	}
	fmt.Fprintf(s.out, "idle %d ms, tx %d ms, rx %d ms, wakes %d\n",
		ps.IdleTimeMs, ps.TxTimeMs, ps.RxTimeMs, ps.TotalWakeCount)
}

func (s *Shell) cmdLogMode(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Current log mode: %s\n", s.m.LogMode())
		return
	}
	s.result("logmode "+args[0], s.m.SetLogMode(args[0]))
}

func (s *Shell) cmdLayout() {
	manifest, err := version.LoadCurrentLayout()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	v, err := version.Parse(manifest.Version)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	res := version.ValidateHost(manifest, bridge.Layout())
	fmt.Fprintf(s.out, "Layout %s (%s): ", v, version.LayoutTag(v.Major))
	if res.Valid {
		fmt.Fprintln(s.out, "valid")
	} else {
		fmt.Fprintln(s.out, "invalid")
	}
	for _, e := range res.Errors {
		fmt.Fprintf(s.out, "  error: %s\n", e)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(s.out, "  warning: %s\n", w)
	}
}

func parseSessionID(s string) (int32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}

// parseAppConfigs parses "type=value" pairs, both in hex.
func parseAppConfigs(args []string) ([]uci.AppConfigTlv, error) {
	tlvs := make([]uci.AppConfigTlv, 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("expected type=value, got %q", a)
		}
		t, err := strconv.ParseUint(k, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", k, err)
		}
		val, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", v, err)
		}
		tlvs = append(tlvs, uci.AppConfigTlv{Type: uci.AppConfigTlvType(t), Value: val})
	}
	return tlvs, nil
}
