package classify

// Dictionaries holds the static lookup data the classifier consults before
// any network call.  They are loaded once at startup and never mutated.
type Dictionaries struct {
	// DrugUses maps lowercase drug names to their validated uses.  The key set
	// doubles as the known-drug dictionary; the values feed enrichment.
	DrugUses map[string][]string

	// DiseaseDrugs maps lowercase disease names to their curated first-line
	// drugs.
	DiseaseDrugs map[string][]string

	// DiseaseHints are substrings that mark a query as disease-directed even
	// when the exact name is not in DiseaseDrugs.
	DiseaseHints []string
}

// DefaultDictionaries returns the curated dictionaries shipped with the
// service.
func DefaultDictionaries() *Dictionaries {
	return &Dictionaries{
		DrugUses:     drugUses,
		DiseaseDrugs: diseaseDrugs,
		DiseaseHints: diseaseHints,
	}
}

var drugUses = map[string][]string{
	// NSAIDs
	"ibuprofen":    {"Pain relief", "Anti-inflammatory", "Fever reduction", "Dysmenorrhea treatment"},
	"aspirin":      {"Pain relief", "Anti-inflammatory", "Thrombosis prevention", "Myocardial infarction prevention"},
	"naproxen":     {"Pain relief", "Anti-inflammatory", "Rheumatoid arthritis", "Osteoarthritis"},
	"diclofenac":   {"Pain relief", "Anti-inflammatory", "Osteoarthritis", "Ankylosing spondylitis"},
	"celecoxib":    {"Pain relief", "Anti-inflammatory", "Osteoarthritis", "Rheumatoid arthritis"},
	"meloxicam":    {"Pain relief", "Anti-inflammatory", "Osteoarthritis", "Rheumatoid arthritis"},
	"indomethacin": {"Pain relief", "Anti-inflammatory", "Gout", "Patent ductus arteriosus"},

	// Analgesics
	"paracetamol":   {"Pain relief", "Fever reduction", "Headache treatment"},
	"acetaminophen": {"Pain relief", "Fever reduction", "Headache treatment"},
	"tramadol":      {"Pain relief", "Neuropathic pain", "Moderate to severe pain"},
	"codeine":       {"Pain relief", "Cough suppression", "Diarrhea treatment"},

	// Antidiabetics
	"metformin":     {"Type 2 diabetes mellitus", "Polycystic ovary syndrome", "Weight management"},
	"glipizide":     {"Type 2 diabetes mellitus", "Blood glucose control"},
	"glyburide":     {"Type 2 diabetes mellitus", "Blood glucose control"},
	"pioglitazone":  {"Type 2 diabetes mellitus", "Insulin sensitization"},
	"sitagliptin":   {"Type 2 diabetes mellitus", "DPP-4 inhibition"},
	"empagliflozin": {"Type 2 diabetes mellitus", "Heart failure", "Chronic kidney disease"},
	"liraglutide":   {"Type 2 diabetes mellitus", "Weight management"},

	// Antihypertensives
	"amlodipine":          {"Hypertension", "Angina pectoris", "Coronary artery disease"},
	"lisinopril":          {"Hypertension", "Heart failure", "Diabetic nephropathy"},
	"losartan":            {"Hypertension", "Diabetic nephropathy", "Stroke prevention"},
	"hydrochlorothiazide": {"Hypertension", "Edema", "Heart failure"},
	"atenolol":            {"Hypertension", "Angina pectoris", "Myocardial infarction prevention"},
	"metoprolol":          {"Hypertension", "Angina pectoris", "Heart failure"},
	"valsartan":           {"Hypertension", "Heart failure", "Post-myocardial infarction"},
	"telmisartan":         {"Hypertension", "Cardiovascular risk reduction"},

	// Antibiotics and antiprotozoals
	"amoxicillin":   {"Bacterial infections", "Ear infections", "Urinary tract infections", "Respiratory infections"},
	"azithromycin":  {"Bacterial infections", "Respiratory tract infections", "Skin infections", "Sexually transmitted infections"},
	"ciprofloxacin": {"Bacterial infections", "Urinary tract infections", "Gastrointestinal infections", "Respiratory infections"},
	"doxycycline":   {"Bacterial infections", "Acne", "Malaria prevention", "Lyme disease"},
	"clindamycin":   {"Bacterial infections", "Skin infections", "Intra-abdominal infections", "Dental infections"},
	"erythromycin":  {"Bacterial infections", "Respiratory tract infections", "Skin infections"},
	"metronidazole": {"Bacterial infections", "Protozoal infections", "Anaerobic infections", "Giardiasis", "Trichomoniasis"},

	// Antidepressants
	"sertraline":   {"Depression", "Anxiety disorders", "OCD", "PTSD"},
	"fluoxetine":   {"Depression", "Bulimia nervosa", "OCD", "Premenstrual dysphoric disorder"},
	"escitalopram": {"Depression", "Generalized anxiety disorder"},
	"citalopram":   {"Depression", "Anxiety disorders"},
	"venlafaxine":  {"Depression", "Generalized anxiety disorder", "Panic disorder"},
	"duloxetine":   {"Depression", "Diabetic neuropathy", "Fibromyalgia"},

	// Statins
	"atorvastatin": {"Hypercholesterolemia", "Cardiovascular disease prevention", "Stroke prevention"},
	"simvastatin":  {"Hypercholesterolemia", "Cardiovascular disease prevention"},
	"rosuvastatin": {"Hypercholesterolemia", "Cardiovascular disease prevention"},
	"pravastatin":  {"Hypercholesterolemia", "Cardiovascular disease prevention"},

	// Proton pump inhibitors
	"omeprazole":   {"Gastroesophageal reflux disease", "Peptic ulcer disease", "Helicobacter pylori eradication"},
	"pantoprazole": {"Gastroesophageal reflux disease", "Peptic ulcer disease"},
	"esomeprazole": {"Gastroesophageal reflux disease", "Peptic ulcer disease"},
	"lansoprazole": {"Gastroesophageal reflux disease", "Peptic ulcer disease"},

	// Corticosteroids
	"prednisone":         {"Anti-inflammatory", "Immunosuppression", "Rheumatoid arthritis", "Asthma"},
	"dexamethasone":      {"Anti-inflammatory", "Immunosuppression", "Cerebral edema", "COVID-19 treatment"},
	"methylprednisolone": {"Anti-inflammatory", "Multiple sclerosis exacerbation", "Rheumatoid arthritis"},

	// Hormonal medications
	"levothyroxine":       {"Hypothyroidism", "Thyroid hormone replacement"},
	"estradiol":           {"Hormone replacement therapy", "Menopausal symptoms"},
	"medroxyprogesterone": {"Contraception", "Endometriosis", "Abnormal uterine bleeding"},
	"testosterone":        {"Hypogonadism", "Delayed puberty", "Breast cancer"},

	// Cardiovascular
	"warfarin":       {"Thrombosis prevention", "Atrial fibrillation", "Deep vein thrombosis"},
	"clopidogrel":    {"Thrombosis prevention", "Myocardial infarction prevention", "Stroke prevention"},
	"digoxin":        {"Heart failure", "Atrial fibrillation", "Supraventricular tachycardia"},
	"furosemide":     {"Edema", "Heart failure", "Hypertension"},
	"spironolactone": {"Heart failure", "Hypertension", "Primary aldosteronism"},

	// Respiratory
	"albuterol":   {"Bronchodilation", "Asthma", "COPD exacerbation"},
	"salbutamol":  {"Bronchodilation", "Asthma", "COPD exacerbation", "Exercise-induced bronchospasm"},
	"fluticasone": {"Anti-inflammatory", "Asthma", "COPD"},
	"montelukast": {"Asthma", "Allergic rhinitis", "Exercise-induced bronchoconstriction"},
	"ipratropium": {"Bronchodilation", "COPD", "Asthma"},
	"tiotropium":  {"COPD", "Bronchodilation"},

	// Gastrointestinal
	"loperamide":     {"Diarrhea", "Irritable bowel syndrome"},
	"ondansetron":    {"Nausea", "Vomiting", "Chemotherapy-induced nausea"},
	"ranitidine":     {"Gastroesophageal reflux disease", "Peptic ulcer disease"},
	"metoclopramide": {"Nausea", "Gastroparesis", "Migraine headache"},

	// Neurological
	"gabapentin":    {"Neuropathic pain", "Seizures", "Restless legs syndrome"},
	"pregabalin":    {"Neuropathic pain", "Fibromyalgia", "Seizures"},
	"lamotrigine":   {"Seizures", "Bipolar disorder", "Neuropathic pain"},
	"topiramate":    {"Seizures", "Migraine prevention", "Weight management"},
	"carbamazepine": {"Seizures", "Trigeminal neuralgia", "Bipolar disorder"},

	// Ophthalmic
	"latanoprost": {"Glaucoma", "Ocular hypertension"},
	"timolol":     {"Glaucoma", "Ocular hypertension", "Migraine prevention"},

	// Dermatological
	"hydrocortisone": {"Anti-inflammatory", "Skin conditions", "Allergic reactions"},
	"clotrimazole":   {"Fungal infections", "Candidiasis", "Tinea infections"},
}

var diseaseDrugs = map[string][]string{
	"fever":                     {"Paracetamol", "Ibuprofen"},
	"cough":                     {"Dextromethorphan", "Guaifenesin"},
	"cold":                      {"Cetirizine", "Paracetamol"},
	"flu":                       {"Oseltamivir", "Ibuprofen"},
	"headache":                  {"Paracetamol", "Aspirin"},
	"migraine":                  {"Sumatriptan", "Propranolol"},
	"diabetes":                  {"Metformin", "Insulin", "Glipizide"},
	"hypertension":              {"Amlodipine", "Losartan"},
	"asthma":                    {"Salbutamol", "Budesonide"},
	"pneumonia":                 {"Azithromycin", "Amoxicillin"},
	"tb":                        {"Isoniazid", "Rifampicin"},
	"infection":                 {"Amoxicillin", "Ciprofloxacin"},
	"acidity":                   {"Pantoprazole", "Omeprazole"},
	"gastritis":                 {"Pantoprazole", "Domperidone"},
	"stomach pain":              {"Dicyclomine", "Pantoprazole"},
	"ulcer":                     {"Ranitidine", "Omeprazole"},
	"anxiety":                   {"Alprazolam", "Buspirone"},
	"depression":                {"Fluoxetine", "Sertraline", "Escitalopram"},
	"parkinsons":                {"Levodopa", "Carbidopa", "Pramipexole"},
	"parkinson":                 {"Levodopa", "Carbidopa", "Pramipexole"},
	"thyroid":                   {"Levothyroxine", "Liothyronine"},
	"hypothyroidism":            {"Levothyroxine", "Liothyronine"},
	"hyperthyroidism":           {"Methimazole", "Propylthiouracil"},
	"covid19":                   {"Remdesivir", "Dexamethasone", "Favipiravir"},
	"covid":                     {"Remdesivir", "Dexamethasone", "Favipiravir"},
	"coronavirus":               {"Remdesivir", "Dexamethasone", "Favipiravir"},
	"cancer":                    {"Chemotherapy agents", "Targeted therapies"},
	"arthritis":                 {"Ibuprofen", "Methotrexate", "Hydroxychloroquine"},
	"rheumatoid arthritis":      {"Methotrexate", "Adalimumab", "Etanercept"},
	"osteoarthritis":            {"Ibuprofen", "Acetaminophen", "Glucosamine"},
	"alzheimer":                 {"Donepezil", "Memantine", "Rivastigmine"},
	"alzheimers":                {"Donepezil", "Memantine", "Rivastigmine"},
	"epilepsy":                  {"Phenytoin", "Valproate", "Lamotrigine"},
	"seizures":                  {"Phenytoin", "Valproate", "Lamotrigine"},
	"schizophrenia":             {"Risperidone", "Olanzapine", "Quetiapine"},
	"bipolar":                   {"Lithium", "Valproate", "Lamotrigine"},
	"bipolar disorder":          {"Lithium", "Valproate", "Lamotrigine"},
	"heart disease":             {"Aspirin", "Statins", "Beta-blockers"},
	"cardiovascular":            {"Aspirin", "Statins", "Beta-blockers"},
	"stroke":                    {"Aspirin", "Clopidogrel", "Warfarin"},
	"kidney disease":            {"ACE inhibitors", "ARBs", "Diuretics"},
	"liver disease":             {"Ursodeoxycholic acid", "Corticosteroids"},
	"hepatitis":                 {"Interferon", "Antivirals", "Ribavirin"},
	"period pain":               {"Ibuprofen", "Naproxen", "Acetaminophen"},
	"menstrual cramps":          {"Ibuprofen", "Naproxen", "Acetaminophen"},
	"dysmenorrhea":              {"Ibuprofen", "Naproxen", "Acetaminophen"},
	"menstrual pain":            {"Ibuprofen", "Naproxen", "Acetaminophen"},
	"hiv":                       {"Tenofovir", "Efavirenz", "Dolutegravir"},
	"aids":                      {"Tenofovir", "Efavirenz", "Dolutegravir"},
	"pcos":                      {"Metformin", "Clomiphene", "Letrozole"},
	"pco":                       {"Metformin", "Clomiphene", "Letrozole"},
	"polycystic ovary syndrome": {"Metformin", "Clomiphene", "Letrozole"},
}

var diseaseHints = []string{
	"fever", "pain", "cough", "cold", "flu", "infection",
	"asthma", "diabetes", "hypertension", "depression",
	"anxiety", "gastritis", "ulcer", "stomach", "headache",
	"parkinsons", "parkinson", "thyroid", "hypothyroidism", "hyperthyroidism",
	"covid", "covid19", "coronavirus", "cancer", "arthritis", "rheumatoid",
	"osteoarthritis", "alzheimer", "alzheimers", "epilepsy", "seizures",
	"schizophrenia", "bipolar", "heart", "cardiovascular", "stroke",
	"kidney", "liver", "hepatitis", "period", "menstrual", "cramps",
	"hiv", "aids", "pcos", "pco",
}

// CuratedDiseaseDrugs returns the curated drug list for a disease name, or
// nil when the disease is not in the table.
func (d *Dictionaries) CuratedDiseaseDrugs(name string) []string {
	return d.DiseaseDrugs[normalizeQuery(name)]
}
