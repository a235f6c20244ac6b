// This file is part of romprops.
//
// romprops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romprops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romprops.  If not, see <https://www.gnu.org/licenses/>.

package publishers

var table = map[string]string{
	"01": "Nintendo",
	"08": "Capcom",
	"09": "Hot-B",
	"0A": "Jaleco",
	"0B": "Coconuts Japan",
	"0C": "Coconuts Japan/G.X.Media",
	"13": "Electronic Arts Japan",
	"18": "Hudson Soft Japan",
	"19": "S.C.P.",
	"1A": "Yonoman",
	"20": "Destination Software",
	"24": "PCM Complete",
	"25": "San-X",
	"28": "Kemco Japan",
	"29": "Seta",
	"2N": "Nowpro",
	"2P": "The Pokémon Company",
	"30": "Viacom",
	"31": "Nintendo",
	"32": "Bandai",
	"33": "Ocean/Acclaim",
	"34": "Konami",
	"35": "Hector",
	"37": "Taito",
	"38": "Hudson",
	"39": "Banpresto",
	"41": "Ubisoft",
	"42": "Atlus",
	"44": "Malibu",
	"46": "Angel",
	"47": "Bullet-Proof Software",
	"49": "Irem",
	"4F": "Eidos",
	"50": "Absolute",
	"51": "Acclaim",
	"52": "Activision",
	"53": "American Sammy",
	"54": "Take-Two Interactive",
	"55": "Hi Tech",
	"56": "LJN",
	"58": "Mattel",
	"5A": "Mindscape",
	"5B": "Romstar",
	"5C": "Taxan",
	"5D": "Midway",
	"5F": "American Softworks",
	"60": "Titus",
	"61": "Virgin Interactive",
	"64": "LucasArts",
	"67": "Ocean",
	"69": "Electronic Arts",
	"6E": "Elite Systems",
	"6F": "Electro Brain",
	"70": "Infogrames",
	"71": "Interplay",
	"72": "JVC",
	"73": "Parker Brothers",
	"75": "Sales Curve",
	"78": "THQ",
	"79": "Accolade",
	"7A": "Triffix",
	"7C": "MicroProse",
	"7D": "Vivendi Universal",
	"7F": "Kemco",
	"80": "Misawa",
	"83": "LOZC",
	"86": "Tokuma Shoten",
	"8B": "Bullet-Proof Software",
	"8C": "Vic Tokai",
	"8E": "Ape",
	"8F": "I'Max",
	"91": "Chunsoft",
	"92": "Video System",
	"93": "Tsuburaya Productions",
	"95": "Varie",
	"96": "Yonezawa/S'Pal",
	"97": "Kaneko",
	"99": "Pack-In-Video",
	"9A": "Nichibutsu",
	"9B": "Tecmo",
	"9C": "Imagineer",
	"A0": "Telenet",
	"A1": "Hori",
	"A4": "Konami",
	"A6": "Kawada",
	"A7": "Takara",
	"A9": "Technos Japan",
	"AA": "JVC",
	"AC": "Toei Animation",
	"AD": "Toho",
	"AF": "Namco",
	"B0": "Acclaim Japan",
	"B1": "ASCII/Nexoft",
	"B2": "Bandai",
	"B4": "Enix",
	"B6": "HAL Laboratory",
	"B7": "SNK",
	"B9": "Pony Canyon",
	"BA": "Culture Brain",
	"BB": "Sunsoft",
	"BD": "Sony Imagesoft",
	"BF": "Sammy",
	"C0": "Taito",
	"C2": "Kemco",
	"C3": "Square",
	"C4": "Tokuma Shoten",
	"C5": "Data East",
	"C6": "Tonkin House",
	"C8": "Koei",
	"CA": "Ultra Games",
	"CB": "Vap",
	"CC": "Use Corporation",
	"CD": "Meldac",
	"CE": "Pony Canyon",
	"CF": "Angel",
	"D0": "Taito",
	"D1": "Sofel",
	"D2": "Quest",
	"D3": "Sigma Enterprises",
	"D4": "Ask Kodansha",
	"D6": "Naxat Soft",
	"D7": "Copya System",
	"D9": "Banpresto",
	"DA": "Tomy",
	"DB": "LJN",
	"DD": "NCS",
	"DE": "Human",
	"DF": "Altron",
	"E0": "Jaleco",
	"E1": "Towa Chiki",
	"E2": "Yutaka",
	"E3": "Varie",
	"E5": "Epoch",
	"E7": "Athena",
	"E8": "Asmik",
	"E9": "Natsume",
	"EA": "King Records",
	"EB": "Atlus",
	"EC": "Epic/Sony Records",
	"EE": "IGS",
	"F0": "A Wave",
}
