/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package zoneinfo reads and sets the system timezone and enumerates the
// timezones known to the system timezone database
package zoneinfo

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

const magic = "TZif"

var errBadData = errors.New("malformed time zone information")
var errUnsupportedVersion = errors.New("unsupported version")

// Header represents file header structure. Fields names are copied from doc
type Header struct {
	// A four-octet unsigned integer specifying the number of UTC/local indicators contained in the body.
	IsUtcCnt uint32
	// A four-octet unsigned integer specifying the number of standard/wall indicators contained in the body.
	IsStdCnt uint32
	// A four-octet unsigned integer specifying the number of leap second records contained in the body.
	LeapCnt uint32
	// A four-octet unsigned integer specifying the number of transition times contained in the body.
	TimeCnt uint32
	// A four-octet unsigned integer specifying the number of local time type Records contained in the body - MUST NOT be zero.
	TypeCnt uint32
	// A four-octet unsigned integer specifying the total number of octets used by the set of time zone designations contained in the body.
	CharCnt uint32
}

// ReadHeader reads the version and the first header of a TZif stream
func ReadHeader(r io.Reader) (byte, *Header, error) {
	// 4-byte magic "TZif", 1-byte version, then 15 bytes of padding
	p := make([]byte, 20)
	if _, err := io.ReadFull(r, p); err != nil || string(p[:4]) != magic {
		return 0, nil, errBadData
	}
	version := p[4]
	if version != 0 && version != '2' && version != '3' && version != '4' {
		return 0, nil, errUnsupportedVersion
	}

	hdr := &Header{}
	if err := binary.Read(r, binary.BigEndian, hdr); err != nil {
		return 0, nil, errBadData
	}
	if hdr.TypeCnt == 0 {
		return 0, nil, errBadData
	}
	return version, hdr, nil
}

// IsTZif reports whether path is a readable TZif file
func IsTZif(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = ReadHeader(f)
	return err == nil
}
