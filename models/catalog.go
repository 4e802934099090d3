package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RawRecord is one untyped row of the catalog JSON. Exports come in two
// shapes: compact single-letter keys and the spreadsheet's original Chinese
// column names. Values are coerced to strings so a malformed cell degrades
// to its printed form instead of failing the load.
type RawRecord map[string]interface{}

// Raw record key pairs: compact form first, spreadsheet column second.
const (
	keyNameShort      = "n"
	keyNameLong       = "游戏名字"
	keyImageShort     = "i"
	keyImageLong      = "图片地址"
	keyDownloadShort  = "d"
	keyDownloadLong   = "下载地址"
	keyAntiCheatShort = "a"
	keyAntiCheatLong  = "反作弊文件下载"
)

// ParseRawRecords decodes a catalog JSON document into raw records.
func ParseRawRecords(data []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return records, nil
}

// Name returns the record's display name, or UnknownGameName when absent.
func (r RawRecord) Name() string {
	if name := r.field(keyNameShort, keyNameLong); name != "" {
		return name
	}
	return UnknownGameName
}

// ImageURL returns the record's image address.
func (r RawRecord) ImageURL() string {
	return r.field(keyImageShort, keyImageLong)
}

// DownloadURL returns the record's download address.
func (r RawRecord) DownloadURL() string {
	return r.field(keyDownloadShort, keyDownloadLong)
}

// AntiCheatURL returns the record's anti-cheat file address.
func (r RawRecord) AntiCheatURL() string {
	return r.field(keyAntiCheatShort, keyAntiCheatLong)
}

// field prefers the compact key, falls back to the spreadsheet column, and
// coerces whatever it finds to a trimmed string.
func (r RawRecord) field(short, long string) string {
	if value, ok := r[short]; ok {
		return coerceString(value)
	}
	if value, ok := r[long]; ok {
		return coerceString(value)
	}
	return ""
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" an ID column would otherwise pick up.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
