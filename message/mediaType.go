package message

import (
	"fmt"
	"strconv"
)

// MediaType specifies the content format of a message.
type MediaType uint16

// Content formats.
const (
	TextPlain         MediaType = 0     // text/plain;charset=utf-8
	AppCoseEncrypt0   MediaType = 16    // application/cose; cose-type="cose-encrypt0" (RFC 8152)
	AppCoseMac0       MediaType = 17    // application/cose; cose-type="cose-mac0" (RFC 8152)
	AppCoseSign1      MediaType = 18    // application/cose; cose-type="cose-sign1" (RFC 8152)
	AppLinkFormat     MediaType = 40    // application/link-format
	AppXML            MediaType = 41    // application/xml
	AppOctets         MediaType = 42    // application/octet-stream
	AppExi            MediaType = 47    // application/exi
	AppJSON           MediaType = 50    // application/json
	AppJSONPatch      MediaType = 51    // application/json-patch+json (RFC6902)
	AppJSONMergePatch MediaType = 52    // application/merge-patch+json (RFC7396)
	AppCBOR           MediaType = 60    // application/cbor (RFC 7049)
	AppCWT            MediaType = 61    // application/cwt
	AppCoseEncrypt    MediaType = 96    // application/cose; cose-type="cose-encrypt" (RFC 8152)
	AppCoseMac        MediaType = 97    // application/cose; cose-type="cose-mac" (RFC 8152)
	AppCoseSign       MediaType = 98    // application/cose; cose-type="cose-sign" (RFC 8152)
	AppCoseKey        MediaType = 101   // application/cose-key (RFC 8152)
	AppCoseKeySet     MediaType = 102   // application/cose-key-set (RFC 8152)
	AppSenmlJSON      MediaType = 110   // application/senml+json
	AppSenmlCbor      MediaType = 112   // application/senml+cbor
	AppCoapGroup      MediaType = 256   // coap-group+json (RFC 7390)
	AppOcfCbor        MediaType = 10000 // application/vnd.ocf+cbor
	AppLwm2mTLV       MediaType = 11542 // application/vnd.oma.lwm2m+tlv
	AppLwm2mJSON      MediaType = 11543 // application/vnd.oma.lwm2m+json
)

var mediaTypeToString = map[MediaType]string{
	TextPlain:         "text/plain;charset=utf-8",
	AppCoseEncrypt0:   "application/cose; cose-type=\"cose-encrypt0\"",
	AppCoseMac0:       "application/cose; cose-type=\"cose-mac0\"",
	AppCoseSign1:      "application/cose; cose-type=\"cose-sign1\"",
	AppLinkFormat:     "application/link-format",
	AppXML:            "application/xml",
	AppOctets:         "application/octet-stream",
	AppExi:            "application/exi",
	AppJSON:           "application/json",
	AppJSONPatch:      "application/json-patch+json",
	AppJSONMergePatch: "application/merge-patch+json",
	AppCBOR:           "application/cbor",
	AppCWT:            "application/cwt",
	AppCoseEncrypt:    "application/cose; cose-type=\"cose-encrypt\"",
	AppCoseMac:        "application/cose; cose-type=\"cose-mac\"",
	AppCoseSign:       "application/cose; cose-type=\"cose-sign\"",
	AppCoseKey:        "application/cose-key",
	AppCoseKeySet:     "application/cose-key-set",
	AppSenmlJSON:      "application/senml+json",
	AppSenmlCbor:      "application/senml+cbor",
	AppCoapGroup:      "coap-group+json",
	AppOcfCbor:        "application/vnd.ocf+cbor",
	AppLwm2mTLV:       "application/vnd.oma.lwm2m+tlv",
	AppLwm2mJSON:      "application/vnd.oma.lwm2m+json",
}

func (c MediaType) String() string {
	str, ok := mediaTypeToString[c]
	if !ok {
		return "unknown media type: 0x" + strconv.FormatInt(int64(c), 16)
	}
	return str
}

// IsRegistered reports whether c is a known content format.
func (c MediaType) IsRegistered() bool {
	_, ok := mediaTypeToString[c]
	return ok
}

func ToMediaType(v string) (MediaType, error) {
	for key, val := range mediaTypeToString {
		if val == v {
			return key, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown media type %v", ErrInvalidValue, v)
}
