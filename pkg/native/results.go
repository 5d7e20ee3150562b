package native

import "github.com/uwbcore/uwb-go/pkg/uci"

// MaxSessionNumber is the number of concurrent sessions reported to the
// host.
const MaxSessionNumber = 5

// ConfigStatusData is the result of SetAppConfigurations. Data holds one
// (config id, status) byte pair per rejected parameter.
type ConfigStatusData struct {
	Status int32
	Count  int32
	Data   []byte
}

// TlvData carries encoded (type, length, value) records.
type TlvData struct {
	Status int32
	Count  int32
	Data   []byte
}

// VendorResponse is the result of SendRawVendorCmd.
type VendorResponse struct {
	Status  int8
	GID     int32
	OID     int32
	Payload []byte
}

// invalidVendorResponse is returned for every failed vendor command.
func invalidVendorResponse() *VendorResponse {
	return &VendorResponse{Status: int8(uci.StatusFailed), GID: -1, OID: -1}
}

// Valid reports whether r carries a chip response.
func (r *VendorResponse) Valid() bool {
	return r != nil && r.GID >= 0
}

// PowerStats are the chip power counters.
type PowerStats struct {
	IdleTimeMs     int32
	TxTimeMs       int32
	RxTimeMs       int32
	TotalWakeCount int32
}

// DtTagRoundsStatus is the result of SessionUpdateActiveRoundsDtTag.
// Indexes lists the ranging rounds the chip could not activate.
type DtTagRoundsStatus struct {
	Status  int32
	Count   int32
	Indexes []byte
}
