package grac

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syllabifyCase struct {
	word string
	want string // syllables joined with "-"
}

var syllabifyGroups = []struct {
	name  string
	cases []syllabifyCase
}{
	{"polytonic", []syllabifyCase{
		{"γυναικός", "γυ-ναι-κός"}, {"φῡ́ω", "φῡ́-ω"}, {"Μελέτες", "Με-λέ-τες"}, {"στρες", "στρες"},
		{"άνδρας", "άν-δρας"}, {"ἄρουι", "ἄ-ρου-ι"}, {"ἄρουιν", "ἄ-ρου-ιν"}, {"Ἀχαιιά", "Ἀ-χαι-ι-ά"},
		{"Ἠελίοιο", "Ἠ-ε-λί-οι-ο"}, {"Θρήικι", "Θρή-ι-κι"}, {"Ἠοῖα", "Ἠ-οῖ-α"},
		{"κόσμος", "κό-σμος"},
	}},
	{"names", []syllabifyCase{
		{"Πυθαγόρας", "Πυ-θα-γό-ρας"}, {"Αλέξανδρος", "Α-λέ-ξαν-δρος"}, {"Ἀθήνα", "Ἀ-θή-να"},
		{"Ὅμηρος", "Ὅ-μη-ρος"},
	}},
	{"basic", []syllabifyCase{
		{"ἄρουιν", "ἄ-ρου-ιν"}, {"οιωνός", "οι-ω-νός"},
	}},
	{"punctuation", []syllabifyCase{
		{"Αθήνα.", "Α-θή-να."}, {"φιλοσοφία,", "φι-λο-σο-φί-α,"}, {"παιδεία;", "παι-δεί-α;"},
	}},
	{"double consonants", []syllabifyCase{
		{"μέλισσα", "μέ-λισ-σα"}, {"θάλασσα", "θά-λασ-σα"}, {"Ελλάδα", "Ελ-λά-δα"},
	}},
	{"consonant pairs", []syllabifyCase{
		{"κόσμος", "κό-σμος"}, {"δεσμός", "δε-σμός"}, {"πάντα", "πά-ντα"},
		{"Τζιτζίκι", "Τζι-τζί-κι"}, {"τμήμα", "τμή-μα"}, {"χνούδι", "χνού-δι"}, {"αχνός", "α-χνός"},
		{"χθες", "χθες"}, {"βγη", "βγη"},
	}},
	{"consonant triples", []syllabifyCase{
		{"εχθρός", "ε-χθρός"}, {"άσπρος", "ά-σπρος"}, {"αντλώ", "α-ντλώ"},
	}},
	{"vowel triples", []syllabifyCase{
		{"ωραιοπάθεια", "ω-ραι-ο-πά-θει-α"}, {"ποίηση", "ποί-η-ση"}, {"σημειώνω", "ση-μει-ώ-νω"},
	}},
	{"upsilon", []syllabifyCase{
		{"ναυς", "ναυς"}, {"νηυς", "νηυς"}, {"ναύαρχος", "ναύ-αρ-χος"}, {"απηύδησα", "α-πηύ-δη-σα"},
	}},
	{"diaeresis", []syllabifyCase{
		{"Αγλαΐα", "Α-γλα-ΐ-α"}, {"αδενοϋπόφυση", "α-δε-νο-ϋ-πό-φυ-ση"},
	}},
	{"hiatus", []syllabifyCase{
		{"αηδόνι", "αη-δό-νι"}, {"καημένος", "καη-μέ-νος"}, {"νταηλίκι", "ντα-η-λί-κι"},
		{"άηχος", "ά-η-χος"}, {"γάιδαρος", "γάι-δα-ρος"}, {"νεράιδα", "νε-ράι-δα"},
		{"παϊδάκι", "πα-ϊ-δά-κι"}, {"αλόη", "α-λό-η"}, {"χλόη", "χλό-η"}, {"αγνόηση", "α-γνό-η-ση"},
		{"ρόιδι", "ρόι-δι"}, {"βουίζω", "βου-ί-ζω"}, {"βουΐζω", "βου-ΐ-ζω"},
	}},
	{"synizesis monosyllables", []syllabifyCase{
		{"για", "για"}, {"πια", "πια"}, {"πλια", "πλια"}, {"πεια", "πεια"}, {"πλεια", "πλεια"},
		{"δύο", "δύ-ο"}, {"ποια", "ποια"}, {"Ποιος", "Ποιος"}, {"Ποιαν", "Ποιαν"}, {"γιεν", "γιεν"},
		{"πλιο", "πλιο"}, {"Μπλια", "Μπλια"}, {"χλιος", "χλιος"}, {"θιος", "θιος"}, {"σιορ", "σιορ"},
	}},
	{"no synizesis", []syllabifyCase{
		{"δωμάτιο", "δω-μά-τι-ο"}, {"σιτηρέσιο", "σι-τη-ρέ-σι-ο"}, {"σχέδιο", "σχέ-δι-ο"},
	}},
	{"synizesis", []syllabifyCase{
		{"αστέρια", "α-στέ-ρια"}, {"αλογίσιοι", "α-λο-γί-σιοι"}, {"αχυρένιε", "α-χυ-ρέ-νιε"},
		{"γέλιο", "γέ-λιο"}, {"γένεια", "γέ-νεια"}, {"στεναχώρια", "στε-να-χώ-ρια"},
		{"σκέλια", "σκέ-λια"}, {"ρολόγια", "ρο-λό-για"}, {"καπετάνιο", "κα-πε-τά-νιο"},
		{"τέτοιο", "τέ-τοιο"}, {"πραμάτεια", "πρα-μά-τεια"}, {"άδειο", "ά-δειο"},
		{"ζαχαρένια", "ζα-χα-ρέ-νια"}, {"γυναικάκιας", "γυ-ναι-κά-κιας"}, {"γύμνια", "γύ-μνια"},
		{"πιρούνια", "πι-ρού-νια"}, {"σπιρούνια", "σπι-ρού-νια"}, {"πηρούνια", "πη-ρού-νια"},
		{"σπηρούνια", "σπη-ρού-νια"}, {"σιντριβάνια", "σι-ντρι-βά-νια"},
		{"συντριβάνια", "συ-ντρι-βά-νια"}, {"αστειάκια", "α-στει-ά-κια"},
	}},
	{"synizesis in -ια nouns", []syllabifyCase{
		{"καλάθια", "κα-λά-θια"}, {"ντουλάπια", "ντου-λά-πια"}, {"μάτια", "μά-τια"},
		{"παγούρια", "πα-γού-ρια"}, {"κάμπια", "κά-μπια"}, {"δόντια", "δό-ντια"},
		{"σελάχια", "σε-λά-χια"}, {"μάγια", "μά-για"}, {"μπάμια", "μπά-μια"},
		{"καραβάκια", "κα-ρα-βά-κια"},
	}},
	{"rare synizesis", []syllabifyCase{
		{"βερεσέδια", "βε-ρε-σέ-δια"}, {"βλαστήμια", "βλα-στή-μια"},
	}},
	{"stressed upsilon", []syllabifyCase{
		{"δάκρυα", "δά-κρυ-α"}, {"δίκτυα", "δί-κτυ-α"}, {"βράδια", "βρά-δια"}, {"δίχτυα", "δί-χτυα"},
		{"στάχυα", "στά-χυα"},
	}},
	{"verbs", []syllabifyCase{
		{"πιω", "πιω"}, {"πιεις", "πιεις"}, {"ήπιαν", "ή-πιαν"},
	}},
	{"diphthongs and clusters", []syllabifyCase{
		{"έχω", "έ-χω"}, {"ουρανός", "ου-ρα-νός"}, {"γάιδαρος", "γάι-δα-ρος"},
		{"μπέικον", "μπέι-κον"}, {"άυλος", "άυ-λος"}, {"κορόιδο", "κο-ρόι-δο"},
		{"ναύτης", "ναύ-της"}, {"ατμός", "α-τμός"}, {"έρχομαι", "έρ-χο-μαι"},
		{"αστράφτω", "α-στρά-φτω"}, {"άνθρωπος", "άν-θρω-πος"}, {"σύννεφο", "σύν-νε-φο"},
	}},
	{"grammar examples", []syllabifyCase{
		{"αισχός", "αι-σχός"}, {"εκστρατεία", "εκ-στρα-τεί-α"},
		{"σκαντζόχοιροι", "σκα-ντζό-χοι-ροι"}, {"μπουμπουκάκι", "μπου-μπου-κά-κι"},
		{"αμπέλι", "α-μπέ-λι"}, {"νταντά", "ντα-ντά"}, {"πέντε", "πέ-ντε"},
		{"μπαγκέτα", "μπα-γκέ-τα"}, {"μουγκρίζω", "μου-γκρί-ζω"},
	}},
	{"school grammar", []syllabifyCase{
		{"γάτα", "γά-τα"}, {"αγκάθι", "α-γκά-θι"}, {"κουλούρι", "κου-λού-ρι"},
		{"μπουκάλι", "μπου-κά-λι"}, {"δέντρο", "δέ-ντρο"}, {"κόμπρα", "κό-μπρα"}, {"ψάρι", "ψά-ρι"},
		{"μπαξές", "μπα-ξές"}, {"άντρας", "ά-ντρας"}, {"ντουλάπι", "ντου-λά-πι"},
		{"δόντι", "δό-ντι"}, {"τούμπα", "τού-μπα"}, {"μαγκούρα", "μα-γκού-ρα"},
		{"μυρμήγκι", "μυρ-μή-γκι"}, {"ψάξε", "ψά-ξε"}, {"αγκίστρι", "α-γκί-στρι"},
		{"άντεξα", "ά-ντε-ξα"}, {"μπρίκι", "μπρί-κι"}, {"ομπρέλα", "ο-μπρέ-λα"},
	}},
	{"hyphenation dictionary", []syllabifyCase{
		{"άκαμπτος", "ά-κα-μπτος"}, {"άλμπατρος", "άλ-μπα-τρος"}, {"έκθλιψη", "έκ-θλι-ψη"},
		{"έκπληκτος", "έκ-πλη-κτος"}, {"έμπνευση", "έ-μπνευ-ση"}, {"ένσφαιρος", "έν-σφαι-ρος"},
		{"ίντσα", "ί-ντσα"}, {"αεροελεγκτής", "α-ε-ρο-ε-λε-γκτής"},
		{"αισχρολόγος", "αι-σχρο-λό-γος"}, {"αλτρουισμός", "αλ-τρου-ι-σμός"},
		{"αμφιβληστροειδής", "αμ-φι-βλη-στρο-ει-δής"}, {"ανεξάντλητος", "α-νε-ξά-ντλη-τος"},
		{"ανυπέρβλητος", "α-νυ-πέρ-βλη-τος"}, {"αργκό", "αρ-γκό"},
		{"αρθρογραφία", "αρ-θρο-γρα-φί-α"}, {"βολφράμιο", "βολ-φρά-μι-ο"}, {"βούρτσα", "βούρ-τσα"},
		{"γκολτζής", "γκολ-τζής"}, {"γλεντζές", "γλε-ντζές"}, {"Δεκέμβριος", "Δε-κέμ-βρι-ος"},
		{"διόπτρα", "δι-ό-πτρα"}, {"εισπλέω", "ει-σπλέ-ω"}, {"εισπνοή", "ει-σπνο-ή"},
		{"εισπράκτορας", "ει-σπρά-κτο-ρας"}, {"εκδρομέας", "εκ-δρο-μέ-ας"}, {"εκδρομή", "εκ-δρο-μή"},
		{"εκθρόνιση", "εκ-θρό-νι-ση"}, {"εκκρεμότητα", "εκ-κρε-μό-τη-τα"}, {"εκπνοή", "εκ-πνο-ή"},
		{"εκπρόσωπος", "εκ-πρό-σω-πος"}, {"εκπτωτικός", "εκ-πτω-τι-κός"},
		{"εκστομίζω", "εκ-στο-μί-ζω"}, {"εκσφενδονισμός", "εκ-σφεν-δο-νι-σμός"},
		{"εκτρέφω", "ε-κτρέ-φω"}, {"εκφραστικός", "εκ-φρα-στι-κός"}, {"ελκτικός", "ελ-κτι-κός"},
		{"εμβληματικός", "εμ-βλη-μα-τι-κός"}, {"ενθρόνιση", "εν-θρό-νι-ση"},
		{"ευστροφία", "ευ-στρο-φί-α"}, {"εχθροπραξία", "ε-χθρο-πρα-ξί-α"},
		{"ινκόγκνιτο", "ιν-κό-γκνι-το"}, {"ινστιτούτο", "ιν-στι-τού-το"},
		{"ισχνότητα", "ι-σχνό-τη-τα"}, {"καλντερίμι", "καλ-ντε-ρί-μι"}, {"καμτσίκι", "καμ-τσί-κι"},
		{"καρτποστάλ", "καρτ-πο-στάλ"}, {"κομπλιμέντο", "κο-μπλι-μέ-ντο"},
		{"κύλινδρος", "κύ-λιν-δρος"}, {"μπαχτσές", "μπα-χτσές"},
		{"νομενκλατούρα", "νο-μεν-κλα-τού-ρα"}, {"νταρντάνα", "νταρ-ντά-να"},
		{"ντόμπρος", "ντό-μπρος"}, {"πάμφθηνα", "πάμ-φθη-να"}, {"πανσπερμία", "παν-σπερ-μί-α"},
		{"παρεκκλήσι", "πα-ρεκ-κλή-σι"}, {"πορθμός", "πορθ-μός"}, {"προσβλέπω", "προ-σβλέ-πω"},
		{"πρόσκληση", "πρό-σκλη-ση"}, {"πρόσκρουση", "πρό-σκρου-ση"}, {"πρόσκτηση", "πρό-σκτη-ση"},
		{"πρόσπτωση", "πρό-σπτω-ση"}, {"ράφτρα", "ρά-φτρα"}, {"ροσμπίφ", "ρο-σμπίφ"},
		{"σάλτσα", "σάλ-τσα"}, {"σεντράρισμα", "σε-ντρά-ρι-σμα"}, {"στιλπνός", "στιλ-πνός"},
		{"συγκλονιστικός", "συ-γκλο-νι-στι-κός"}, {"σφυρίχτρα", "σφυ-ρί-χτρα"},
		{"σύμπτωση", "σύ-μπτω-ση"}, {"σύντμηση", "σύ-ντμη-ση"}, {"τερπνότητα", "τερ-πνό-τη-τα"},
		{"τζαμτζής", "τζαμ-τζής"}, {"Τουρκμενιστάν", "Τουρκ-με-νι-στάν"},
		{"τουρμπίνα", "τουρ-μπί-να"}, {"τροτσκισμός", "τρο-τσκι-σμός"},
		{"τσουγκράνα", "τσου-γκρά-να"}, {"υπαρκτός", "υ-παρ-κτός"},
		{"υπερδραστήριος", "υ-περ-δρα-στή-ρι-ος"}, {"υπερκράτος", "υ-περ-κρά-τος"},
		{"υπερπλήρης", "υ-περ-πλή-ρης"}, {"υπερσκελίζω", "υ-περ-σκε-λί-ζω"},
		{"υπερσταθμός", "υ-περ-σταθ-μός"}, {"υπερσύγχρονος", "υ-περ-σύγ-χρο-νος"},
		{"υπερτραφής", "υ-περ-τρα-φής"}, {"υπερχρονίζω", "υ-περ-χρο-νί-ζω"},
		{"φλαμίνγκο", "φλα-μίν-γκο"}, {"φολκλορισμός", "φολ-κλο-ρι-σμός"},
	}},
}

func TestSyllabify(t *testing.T) {
	for _, g := range syllabifyGroups {
		t.Run(g.name, func(t *testing.T) {
			for _, c := range g.cases {
				got := strings.Join(Syllabify(c.word), "-")
				if got != c.want {
					t.Errorf("Syllabify(%q) = %q, want %q", c.word, got, c.want)
				}
			}
		})
	}
}

// Segmentation ignores stress, and a diaeresis always splits.
func TestSyllabifyConventions(t *testing.T) {
	tests := []syllabifyCase{
		{"πλάι", "πλάι"},
		{"σόι", "σόι"},
		{"ρολόι", "ρο-λόι"},
		{"δρύινος", "δρύι-νος"},
		{"κομπολόι", "κο-μπο-λόι"},
		{"μαϊμού", "μα-ϊ-μού"},
		{"προϋπόθεση", "προ-ϋ-πό-θε-ση"},
		{"φεγγάρι", "φε-γγά-ρι"},
		{"εγγλέζικος", "ε-γγλέ-ζι-κος"},
		{"μία", "μί-α"},
		{"δύο", "δύ-ο"},
		{"κελαηδώ", "κε-λα-η-δώ"},
		{"αηδόνι", "αη-δό-νι"},
		{"καημένος", "καη-μέ-νος"},
		{"Δαυίδ", "Δαυ-ίδ"},
		// stress-ambiguous homographs are left out of the table
		{"μια", "μι-α"},
		{"δυο", "δυ-ο"},
		{"δια", "δι-α"},
		{"πιει", "πι-ει"},
	}
	for _, tt := range tests {
		got := strings.Join(Syllabify(tt.word), "-")
		if got != tt.want {
			t.Errorf("Syllabify(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSyllabifyMode(t *testing.T) {
	assert.Equal(t, []string{"ποι", "α"}, SyllabifyMode("ποια", false))
	assert.Equal(t, []string{"ποια"}, SyllabifyMode("ποια", true))
	assert.Equal(t, []string{"αρ", "ρώ", "στι", "α"}, SyllabifyMode("αρρώστια", false))
	assert.Equal(t, []string{"αρ", "ρώ", "στια"}, SyllabifyMode("αρρώστια", true))
}

func TestSyllabifyWithMerge(t *testing.T) {
	tests := []struct {
		merge Merge
		word  string
		want  string
	}{
		{MergeEvery, "μάγια", "μά-για"},
		{MergeNever, "μάγια", "μά-γι-α"},
		{MergeEvery, "μυαλό", "μυα-λό"},
		{MergeNever, "μυαλό", "μυ-α-λό"},
		{MergeEvery, "καληώρα", "κα-ληώ-ρα"},
		{MergeNever, "καληώρα", "κα-λη-ώ-ρα"},
		{MergeLookup, "καληώρα", "κα-ληώ-ρα"},
		// stressed ι does not glide
		{MergeEvery, "μία", "μί-α"},
		// υ closing ευ is consonantal
		{MergeEvery, "ευαγγέλιο", "ευ-α-γγέ-λιο"},
		{MergeEvery, "αϊτός", "α-ϊ-τός"},
	}
	for _, tt := range tests {
		got := strings.Join(SyllabifyWithMerge(tt.word, tt.merge), "-")
		if got != tt.want {
			t.Errorf("SyllabifyWithMerge(%q, %v) = %q, want %q", tt.word, tt.merge, got, tt.want)
		}
	}
}

func TestSyllabifyAt(t *testing.T) {
	assert.Equal(t, []string{"ποια"}, SyllabifyAt("ποια", []int{2}))
	assert.Equal(t, []string{"ποι", "α"}, SyllabifyAt("ποια", nil))
	// positions that do not start a vowel pair are ignored
	assert.Equal(t, []string{"ποι", "α"}, SyllabifyAt("ποια", []int{-1, 0, 3, 7}))
	// the table is bypassed entirely
	assert.Equal(t, []string{"χρό", "νι", "α"}, SyllabifyAt("χρόνια", []int{}))
	assert.Equal(t, []string{"μί", "α"}, SyllabifyAt("μία", nil))
	assert.Equal(t, []string{"μία"}, SyllabifyAt("μία", []int{1}))
}

func TestDiaeresisOverridesDiphthong(t *testing.T) {
	table, err := NewSynizesisTable(map[string][]int{"αϊτός": {0}, "ρολοϊ": {3}})
	require.NoError(t, err)
	s := New(table)

	for _, merge := range []Merge{MergeLookup, MergeNever, MergeEvery} {
		assert.Equal(t, []string{"α", "ϊ", "τός"}, s.SyllabifyWithMerge("αϊτός", merge), merge.String())
		assert.Equal(t, []string{"ρο", "λο", "ϊ"}, s.SyllabifyWithMerge("ρολοϊ", merge), merge.String())
	}
	assert.Equal(t, []string{"α", "ϊ"}, SyllabifyAt("αϊ", []int{0}))
	assert.Equal(t, []string{"αι"}, SyllabifyAt("αι", nil))
}

func TestDigraphsStayInOnset(t *testing.T) {
	tests := []syllabifyCase{
		{"λάμπα", "λά-μπα"},
		{"αμπέλι", "α-μπέ-λι"},
		{"έντομο", "έ-ντο-μο"},
		{"άγκυρα", "ά-γκυ-ρα"},
		{"τσέπη", "τσέ-πη"},
	}
	for _, tt := range tests {
		got := strings.Join(Syllabify(tt.word), "-")
		if got != tt.want {
			t.Errorf("Syllabify(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSyllabifyNoVowel(t *testing.T) {
	assert.Empty(t, Syllabify(""))
	assert.Empty(t, SyllabifyReference(""))
	assert.Equal(t, []string{"στρ"}, Syllabify("στρ"))
	assert.Equal(t, []string{"hello"}, Syllabify("hello"))
	assert.Equal(t, []string{"123"}, Syllabify("123"))
}

func TestConcatenation(t *testing.T) {
	words := []string{
		"", "a", "hello", "\xff\xfe", "\u0301α", "ά\u0301", "α\u0344ι", "α\u0313\u0301νθρωπος",
		"Ά-μπα", "«ποια»", "ό,τι", "δι᾽", "ΑΙΘΟΥΣΑ", "ἄρουιν", "φῡ́ω",
	}
	for _, g := range syllabifyGroups {
		for _, c := range g.cases {
			words = append(words, c.word)
		}
	}
	for _, w := range words {
		for _, merge := range []Merge{MergeLookup, MergeNever, MergeEvery} {
			assert.Equal(t, w, strings.Join(SyllabifyWithMerge(w, merge), ""), "%q %v", w, merge)
		}
		assert.Equal(t, w, strings.Join(SyllabifyReference(w), ""), "%q reference", w)
	}
}

func TestReferenceAgreesWithNever(t *testing.T) {
	for _, g := range syllabifyGroups {
		for _, c := range g.cases {
			assert.Equal(t, SyllabifyWithMerge(c.word, MergeNever), SyllabifyReference(c.word), c.word)
		}
	}
}

func TestWordParts(t *testing.T) {
	w := Segment("ανθρωπος", MergeLookup)
	require.Equal(t, 3, w.Len())
	assert.Equal(t, "αν", w.At(0))
	assert.Equal(t, "", w.Onset(0))
	assert.Equal(t, "ν", w.Coda(0))
	assert.Equal(t, "θρ", w.Onset(1))
	assert.Equal(t, "ω", w.Nucleus(1))
	assert.Equal(t, "πος", w.At(2))
	assert.Equal(t, "ς", w.Coda(2))

	w = Segment("ποια", MergeLookup)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, "οια", w.Nucleus(0))

	w = Segment("στρ", MergeLookup)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, "", w.Nucleus(0))
	assert.Equal(t, 0, w.Stress())

	assert.Equal(t, 2, Segment("χρόνια", MergeLookup).Stress())
	assert.Equal(t, 3, Segment("χρόνια", MergeNever).Stress())
}

func TestParseMerge(t *testing.T) {
	for _, m := range []Merge{MergeLookup, MergeNever, MergeEvery} {
		got, ok := ParseMerge(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMerge("sometimes")
	assert.False(t, ok)
}

func BenchmarkSyllabify(b *testing.B) {
	var words []string
	for _, g := range syllabifyGroups {
		for _, c := range g.cases {
			words = append(words, c.word)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, w := range words {
			Syllabify(w)
		}
	}
}

func BenchmarkSyllabifyReference(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SyllabifyReference("ανεξαρτησία")
	}
}
