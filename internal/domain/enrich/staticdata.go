package enrich

// Curated fallback data used when no provider can answer.  Kept deliberately
// small; anything beyond these entries reports "Data unavailable" rather than
// inventing values.

var fallbackFormulas = map[string]string{
	"aspirin":     "C9H8O4",
	"ibuprofen":   "C13H18O2",
	"paracetamol": "C8H9NO2",
	"metformin":   "C4H11N5",
	"amlodipine":  "C20H25ClN2O5",
}

var fallbackUses = map[string][]string{
	"aspirin":     {"Pain relief", "Anti-inflammatory", "Thrombosis prevention"},
	"ibuprofen":   {"Pain relief", "Anti-inflammatory", "Fever reduction"},
	"paracetamol": {"Pain relief", "Fever reduction"},
	"metformin":   {"Type 2 diabetes", "Polycystic ovary syndrome"},
	"amlodipine":  {"Hypertension", "Angina pectoris"},
}

// ProteinTarget describes one known drug-protein interaction.
type ProteinTarget struct {
	Name        string `json:"name"`
	Confidence  int    `json:"confidence"`
	Mechanism   string `json:"mechanism"`
	Explanation string `json:"explanation"`
}

var proteinTargets = map[string][]ProteinTarget{
	"aspirin": {
		{Name: "COX-1", Confidence: 95, Mechanism: "Irreversible inhibition",
			Explanation: "COX-1 produces prostaglandins that protect the stomach lining and support blood clotting. Aspirin permanently blocks this enzyme, reducing pain and inflammation but may cause stomach irritation."},
		{Name: "COX-2", Confidence: 90, Mechanism: "Irreversible inhibition",
			Explanation: "COX-2 is activated during inflammation and produces prostaglandins that cause pain and swelling. Aspirin blocks this enzyme to reduce fever, pain, and inflammation."},
		{Name: "TXA2 synthase", Confidence: 85, Mechanism: "Inhibition",
			Explanation: "This enzyme produces thromboxane A2, which promotes blood clot formation. Aspirin reduces heart attack risk by inhibiting this pathway."},
	},
	"ibuprofen": {
		{Name: "COX-1", Confidence: 88, Mechanism: "Reversible inhibition",
			Explanation: "COX-1 produces protective prostaglandins for stomach lining. Ibuprofen temporarily blocks this enzyme, reducing pain but with less stomach risk than aspirin."},
		{Name: "COX-2", Confidence: 92, Mechanism: "Reversible inhibition",
			Explanation: "COX-2 causes inflammation and pain during injury. Ibuprofen preferentially blocks this enzyme to reduce swelling, pain, and fever."},
		{Name: "NF-κB", Confidence: 75, Mechanism: "Inhibition",
			Explanation: "NF-κB is a protein that activates inflammation genes. Ibuprofen reduces inflammation by interfering with this signaling pathway."},
	},
	"acetaminophen": {
		{Name: "COX-1", Confidence: 70, Mechanism: "Weak inhibition",
			Explanation: "COX-1 produces prostaglandins in the brain. Acetaminophen weakly blocks this enzyme to reduce fever and pain without much stomach irritation."},
		{Name: "COX-2", Confidence: 65, Mechanism: "Weak inhibition",
			Explanation: "COX-2 contributes to pain and fever. Acetaminophen has minimal effect on this enzyme compared to NSAIDs."},
		{Name: "COX-3", Confidence: 80, Mechanism: "Selective inhibition",
			Explanation: "COX-3 is a brain-specific enzyme involved in pain and fever. Acetaminophen selectively targets this enzyme for pain relief."},
	},
	"amoxicillin": {
		{Name: "PBP1A", Confidence: 90, Mechanism: "Inhibition",
			Explanation: "Penicillin-binding protein 1A is essential for bacterial cell wall synthesis. Amoxicillin binds to this protein, weakening bacterial cell walls."},
		{Name: "PBP1B", Confidence: 85, Mechanism: "Inhibition",
			Explanation: "PBP1B helps bacteria build strong cell walls. Amoxicillin inhibits this protein, making bacteria vulnerable to immune system attack."},
		{Name: "PBP2", Confidence: 80, Mechanism: "Inhibition",
			Explanation: "This penicillin-binding protein maintains bacterial cell wall integrity. Amoxicillin disrupts this protein's function to kill bacteria."},
	},
	"omeprazole": {
		{Name: "H+/K+ ATPase", Confidence: 95, Mechanism: "Irreversible inhibition",
			Explanation: "This proton pump moves acid into the stomach. Omeprazole permanently blocks it, reducing stomach acid production for heartburn relief."},
		{Name: "CYP2C19", Confidence: 75, Mechanism: "Metabolism",
			Explanation: "CYP2C19 is an enzyme that breaks down omeprazole. Genetic variations affect how well the drug works."},
	},
	"simvastatin": {
		{Name: "HMGCS1", Confidence: 90, Mechanism: "Inhibition",
			Explanation: "HMGCS1 starts cholesterol production in the liver. Simvastatin blocks this enzyme to lower cholesterol levels."},
		{Name: "HMGCS2", Confidence: 85, Mechanism: "Inhibition",
			Explanation: "HMGCS2 regulates ketone body production. Simvastatin inhibits this enzyme as part of its cholesterol-lowering mechanism."},
		{Name: "LDL receptor", Confidence: 80, Mechanism: "Upregulation",
			Explanation: "LDL receptors remove cholesterol from blood. Simvastatin increases these receptors to improve cholesterol clearance."},
	},
	"amlodipine": {
		{Name: "CACNA1C", Confidence: 90, Mechanism: "Blockade",
			Explanation: "CACNA1C forms calcium channels in heart and blood vessels. Amlodipine blocks these channels to relax blood vessels and lower blood pressure."},
		{Name: "CACNA1D", Confidence: 85, Mechanism: "Blockade",
			Explanation: "This calcium channel subtype is important in vascular smooth muscle. Amlodipine inhibits it to reduce blood pressure."},
	},
	"metformin": {
		{Name: "AMPK", Confidence: 85, Mechanism: "Activation",
			Explanation: "AMPK is an energy sensor that regulates metabolism. Metformin activates this protein to improve insulin sensitivity and blood sugar control."},
		{Name: "mTOR", Confidence: 75, Mechanism: "Inhibition",
			Explanation: "mTOR controls cell growth and metabolism. Metformin inhibits this pathway to reduce blood sugar and support weight management."},
		{Name: "Complex I", Confidence: 80, Mechanism: "Inhibition",
			Explanation: "Complex I is part of the mitochondrial electron transport chain. Metformin mildly inhibits it, affecting energy production and metabolism."},
	},
}

// targetAliases maps drug name variants onto the canonical proteinTargets key.
var targetAliases = map[string]string{
	"paracetamol": "acetaminophen",
}

// ProteinTargetsFor returns the known protein targets for a drug, or nil when
// none are curated.
func ProteinTargetsFor(drugName string) []ProteinTarget {
	key := normalizeName(drugName)
	if alias, ok := targetAliases[key]; ok {
		key = alias
	}
	return proteinTargets[key]
}

// BrandSeed is one curated canonical-drug-to-brand-names entry used to
// pre-populate the brand name store.
type BrandSeed struct {
	CanonicalName string
	BrandNames    []string
	Regions       []string
	Source        string
}

// BrandNameSeeds returns the curated brand name seed set.
func BrandNameSeeds() []BrandSeed {
	return []BrandSeed{
		{CanonicalName: "Paracetamol", BrandNames: []string{"Tylenol", "Panadol", "Calpol", "Dolo", "Crocin", "Feverall"}, Regions: []string{"US", "UK", "India", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Ibuprofen", BrandNames: []string{"Advil", "Motrin", "Nurofen", "Brufen", "Ibu", "Actiprofen"}, Regions: []string{"US", "UK", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Aspirin", BrandNames: []string{"Bayer Aspirin", "Ecotrin", "Bufferin", "Anacin", "Excedrin"}, Regions: []string{"US", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Amoxicillin", BrandNames: []string{"Amoxil", "Trimox", "Moxatag", "Larotid", "Dispermox"}, Regions: []string{"US", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Omeprazole", BrandNames: []string{"Prilosec", "Losec", "Zegerid", "Omez", "Ultop"}, Regions: []string{"US", "UK", "Europe", "India"}, Source: "DrugBank"},
		{CanonicalName: "Simvastatin", BrandNames: []string{"Zocor", "Lipex", "Zocor Heart-Pro", "Simlup", "Simvacor"}, Regions: []string{"US", "UK", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Amlodipine", BrandNames: []string{"Norvasc", "Istin", "Amlor", "Amlodac", "Amlong"}, Regions: []string{"US", "UK", "Europe", "India"}, Source: "DrugBank"},
		{CanonicalName: "Metformin", BrandNames: []string{"Glucophage", "Fortamet", "Glumetza", "Riomet", "Diaformin"}, Regions: []string{"US", "Europe", "India", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Atorvastatin", BrandNames: []string{"Lipitor", "Sortis", "Torvast", "Atorlip", "Lipvas"}, Regions: []string{"US", "UK", "Europe", "India"}, Source: "DrugBank"},
		{CanonicalName: "Cetirizine", BrandNames: []string{"Zyrtec", "Reactine", "Aller-Tec", "Cetrizet", "Zyrtec-D"}, Regions: []string{"US", "Canada", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Loratadine", BrandNames: []string{"Claritin", "Alavert", "Tavist ND", "Loratad", "Roletra"}, Regions: []string{"US", "Europe", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Diphenhydramine", BrandNames: []string{"Benadryl", "Nytol", "Sominex", "Tylenol PM", "Advil PM"}, Regions: []string{"US", "UK", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Ranitidine", BrandNames: []string{"Zantac", "Raniplex", "Rantac", "Histac", "Novo-Ranidine"}, Regions: []string{"US", "UK", "India", "Global"}, Source: "DrugBank"},
		{CanonicalName: "Furosemide", BrandNames: []string{"Lasix", "Frusemide", "Frusenex", "Frusid", "Urex"}, Regions: []string{"US", "UK", "Europe", "India"}, Source: "DrugBank"},
		{CanonicalName: "Prednisone", BrandNames: []string{"Deltasone", "Rayos", "Prednisone Intensol", "Prednicot", "Prednol"}, Regions: []string{"US", "Europe", "Global"}, Source: "DrugBank"},
	}
}
