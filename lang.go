package heli

import (
	"fmt"
	"strings"
)

// Lang is a compile-time index into the closed set of language-script codes
// this package knows about. The zero value is LangUnd; LangUnd and LangZxx
// are the two reserved special codes.
type Lang int32

// langEntry is one row of the closed registry. code follows the
// "<iso639>_<script>" convention (e.g. "cat_Latn"); collapsTo is the code
// of this entry's canonical macrolanguage form, or the entry's own code when
// it already is canonical.
type langEntry struct {
	code      string
	collapsTo string
	cjk       bool
	special   bool
}

// langTable is the closed set of language-script codes. Order fixes each
// entry's Lang index for the lifetime of the process; do not reorder once
// referenced by a built model snapshot.
//
// This is a representative subset of the ~210-code catalogue used by the
// reference model (grounded on the original HeLI/heliport language list):
// full coverage of every macrolanguage family and script the scoring and
// collapse logic must exercise, without transcribing all ~210 entries by
// hand. See DESIGN.md.
var langTable = []langEntry{
	{code: "und", special: true},
	{code: "zxx", special: true},

	{code: "afr_Latn"}, {code: "amh_Ethi"}, {code: "ara_Arab"}, {code: "asm_Beng"},
	{code: "aze_Latn"}, {code: "bel_Cyrl"}, {code: "ben_Beng"}, {code: "bod_Tibt"},
	{code: "bre_Latn"}, {code: "bul_Cyrl"}, {code: "cat_Latn"}, {code: "ceb_Latn"},
	{code: "ces_Latn"}, {code: "chr_Cher"}, {code: "cor_Latn"}, {code: "cym_Latn"},

	{code: "cmn_Hans", cjk: true}, {code: "cmn_Hant", cjk: true},
	{code: "zho_Hans"}, {code: "zho_Hant", cjk: true},
	{code: "yue_Hant", collapsTo: "zho_Hant", cjk: true},
	{code: "yue_Hans", collapsTo: "zho_Hans"},

	{code: "dan_Latn"}, {code: "deu_Latn"}, {code: "ell_Grek"}, {code: "eng_Latn"},
	{code: "epo_Latn"}, {code: "est_Latn"}, {code: "eus_Latn"}, {code: "fao_Latn"},
	{code: "fin_Latn"},
	{code: "fkv_Latn", collapsTo: "fin_Latn"},
	{code: "vro_Latn", collapsTo: "fin_Latn"},
	{code: "fra_Latn"}, {code: "fry_Latn"}, {code: "gla_Latn"}, {code: "gle_Latn"},
	{code: "glg_Latn"}, {code: "grn_Latn"}, {code: "guj_Gujr"}, {code: "hat_Latn"},
	{code: "heb_Hebr"}, {code: "hin_Deva"},

	{code: "hbs_Latn"},
	{code: "bos_Latn", collapsTo: "hbs_Latn"},
	{code: "hrv_Latn", collapsTo: "hbs_Latn"},
	{code: "srp_Cyrl", collapsTo: "hbs_Latn"},

	{code: "hsb_Latn"}, {code: "hun_Latn"}, {code: "hye_Armn"}, {code: "ibo_Latn"},
	{code: "ilo_Latn"}, {code: "isl_Latn"}, {code: "ita_Latn"}, {code: "jpn_Jpan", cjk: true},
	{code: "kal_Latn"}, {code: "kan_Knda"}, {code: "kat_Geor"}, {code: "kaz_Cyrl"},
	{code: "khm_Khmr"}, {code: "kir_Cyrl"}, {code: "kor_Hang", cjk: true},

	{code: "lao_Laoo"}, {code: "lat_Latn"},
	{code: "lav_Latn"},
	{code: "ltg_Latn", collapsTo: "lav_Latn"},

	{code: "lit_Latn"}, {code: "ltz_Latn"}, {code: "mal_Mlym"}, {code: "mar_Deva"},
	{code: "mkd_Cyrl"}, {code: "mlg_Latn"}, {code: "mlt_Latn"}, {code: "mon_Cyrl"},
	{code: "mri_Latn"},

	{code: "msa_Latn"},
	{code: "zsm_Latn", collapsTo: "msa_Latn"},
	{code: "ind_Latn", collapsTo: "msa_Latn"},
	{code: "min_Latn", collapsTo: "msa_Latn"},

	{code: "mya_Mymr"}, {code: "nav_Latn"}, {code: "nep_Deva"}, {code: "nld_Latn"},
	{code: "nno_Latn", collapsTo: "nor_Latn"}, {code: "nob_Latn", collapsTo: "nor_Latn"},
	{code: "nor_Latn"},
	{code: "oci_Latn"}, {code: "ori_Orya"}, {code: "pan_Guru"}, {code: "pol_Latn"},
	{code: "por_Latn"}, {code: "que_Latn"}, {code: "roh_Latn"}, {code: "ron_Latn"},
	{code: "rus_Cyrl"}, {code: "sah_Cyrl"}, {code: "scn_Latn"}, {code: "sin_Sinh"},
	{code: "slk_Latn"}, {code: "slv_Latn"}, {code: "sme_Latn"}, {code: "sna_Latn"},
	{code: "snd_Arab"}, {code: "som_Latn"}, {code: "sot_Latn"}, {code: "spa_Latn"},
	{code: "sqi_Latn"}, {code: "swa_Latn"}, {code: "swe_Latn"}, {code: "tam_Taml"},
	{code: "tat_Cyrl"}, {code: "tel_Telu"}, {code: "tgk_Cyrl"}, {code: "tgl_Latn"},
	{code: "tha_Thai"}, {code: "tso_Latn"}, {code: "tuk_Latn"}, {code: "tur_Latn"},
	{code: "udm_Cyrl"}, {code: "uig_Arab"}, {code: "ukr_Cyrl"}, {code: "urd_Arab"},
	{code: "uzn_Latn"}, {code: "vie_Latn"}, {code: "vol_Latn"}, {code: "wln_Latn"},
	{code: "xmf_Geor"}, {code: "yid_Hebr"}, {code: "zul_Latn"},
}

const (
	// special indices; guaranteed by construction to be 0 and 1.
	langUndIndex = 0
	langZxxIndex = 1
)

var (
	codeToLang  map[string]Lang
	cjkSet      map[Lang]bool
	collapseMap []Lang // indexed by Lang, collapsed canonical form

	// LangUnd is the "undetermined" special code: no language could be
	// confidently chosen.
	LangUnd = Lang(langUndIndex)
	// LangZxx is the "no linguistic content" special code.
	LangZxx = Lang(langZxxIndex)
)

func init() {
	codeToLang = make(map[string]Lang, len(langTable))
	for i, e := range langTable {
		if _, dup := codeToLang[e.code]; dup {
			panic(fmt.Sprintf("heli: duplicate language code %q in langTable", e.code))
		}
		codeToLang[e.code] = Lang(i)
	}
	if Lang(langUndIndex) != codeToLang["und"] || Lang(langZxxIndex) != codeToLang["zxx"] {
		panic("heli: und/zxx must be the first two entries of langTable")
	}

	cjkSet = make(map[Lang]bool, len(langTable))
	collapseMap = make([]Lang, len(langTable))
	for i, e := range langTable {
		l := Lang(i)
		if e.cjk {
			cjkSet[l] = true
		}
		target := e.code
		if e.collapsTo != "" {
			target = e.collapsTo
		}
		tl, ok := codeToLang[target]
		if !ok {
			panic(fmt.Sprintf("heli: collapse target %q for %q not in langTable", target, e.code))
		}
		collapseMap[i] = tl
	}
	// collapse must be idempotent: collapsing an already-canonical code is a no-op.
	for i, tl := range collapseMap {
		if collapseMap[tl] != tl {
			panic(fmt.Sprintf("heli: collapse target of %q is not itself canonical", langTable[i].code))
		}
	}
}

// NumLangs returns the number of distinct Lang indices, including the two
// special codes. Score vectors and bitmaps are sized to this.
func NumLangs() int { return len(langTable) }

// LangByCode looks up the Lang index for a language-script code such as
// "cat_Latn". ok is false when the code is not in the closed set.
func LangByCode(code string) (lang Lang, ok bool) {
	lang, ok = codeToLang[code]
	return
}

// MustLang looks up a language-script code and panics if it is not part of
// the closed set. Intended for package-init-time wiring of well-known codes.
func MustLang(code string) Lang {
	l, ok := LangByCode(code)
	if !ok {
		panic(fmt.Sprintf("heli: unknown language code %q", code))
	}
	return l
}

// Code returns the wire representation of l, e.g. "cat_Latn", "und", "zxx".
func (l Lang) Code() string {
	if int(l) < 0 || int(l) >= len(langTable) {
		return "?"
	}
	return langTable[l].code
}

func (l Lang) String() string { return l.Code() }

// IsSpecial reports whether l is one of the two reserved codes (und, zxx).
func (l Lang) IsSpecial() bool {
	return l == LangUnd || l == LangZxx
}

// IsCJK reports whether l is part of the fixed CJK set used for the
// script-coverage penalty: {jpn_Jpan, kor_Hang, cmn_Hans, cmn_Hant,
// yue_Hant, zho_Hant}.
func (l Lang) IsCJK() bool { return cjkSet[l] }

// Script returns the ISO 15924 script subtag of l's code, e.g. "Latn" for
// cat_Latn or "Hans" for cmn_Hans. The two special codes (und, zxx) carry
// no script and return "".
func (l Lang) Script() string {
	code := l.Code()
	i := strings.LastIndexByte(code, '_')
	if i < 0 {
		return ""
	}
	return code[i+1:]
}

// Collapse maps a variant language-script code to its canonical
// macrolanguage code, e.g. ltg_Latn -> lav_Latn, yue_Hant -> zho_Hant.
// Collapse is idempotent: Collapse(Collapse(l)) == Collapse(l).
func (l Lang) Collapse() Lang {
	if int(l) < 0 || int(l) >= len(collapseMap) {
		return l
	}
	return collapseMap[l]
}

// Langs returns every Lang index in table order, 0..NumLangs()-1.
func Langs() []Lang {
	out := make([]Lang, len(langTable))
	for i := range out {
		out[i] = Lang(i)
	}
	return out
}

var (
	LangJpnJpan = MustLang("jpn_Jpan")
	LangKorHang = MustLang("kor_Hang")
	LangCmnHans = MustLang("cmn_Hans")
	LangCmnHant = MustLang("cmn_Hant")
	LangYueHant = MustLang("yue_Hant")
	LangZhoHant = MustLang("zho_Hant")
	LangZhoHans = MustLang("zho_Hans")
)
