// Package prompt holds the fixed extraction instructions sent to the
// vision model, one per supported form type. Each prompt embeds the exact
// target JSON schema; the model is asked to return that object and nothing
// else. Treat these as versioned constants: the demo UI renders the
// structured output against the same field names.
package prompt

import "fmt"

// FormType selects which document schema an extraction request targets.
type FormType string

const (
	AdmissionForm  FormType = "admission"
	DevanagariForm FormType = "devanagari"
)

// ForType returns the extraction prompt for the given form type.
func ForType(t FormType) (string, error) {
	switch t {
	case AdmissionForm:
		return admissionPrompt, nil
	case DevanagariForm:
		return devanagariPrompt, nil
	default:
		return "", fmt.Errorf("unknown form type %q", t)
	}
}

const admissionPrompt = `
You are given the scanned pages of the "School Admission Form".

Extract all data points below and return one valid JSON object only "{responseText}", exactly matching this schema.
If a checkbox is ticked, use true; if not ticked or absent, use false.
If a text entry is blank, return an empty string "".
No additional keys, no extra text, comments, Markdown, or code fences.

{
  "studentInformation": {
    "fullName": "",                   // Student's Name:
    "dateOfBirth": "",                // Date of Birth: (MM/DD/YYYY)
    "gender": "",                     // Gender: (e.g., "Male", "Female", "Prefer not to say")
    "residentialAddress": {
      "fullAddress": "",              // Residential Address:
      "city": "",                     // City:
      "state": "",                    // State:
      "zip": ""                       // Zip:
    }
  },
  "parentGuardianInformation": {
    "fullName": "",                   // Parent/Guardian Name:
    "relationshipToStudent": "",      // Relationship to Student:
    "contactNumber": "",              // Contact Number:
    "emailAddress": "",               // Email Address:
    "occupation": "",                 // Occupation:
    "residentialAddressIfDifferent": {
      "fullAddress": "",              // Residential Address (if different from student):
      "city": "",                     // City:
      "state": "",                    // State:
      "zip": ""                       // Zip:
    }
  },
  "previousSchoolDetails": {
    "schoolName": "",                 // Name of Previous School:
    "schoolAddress": {
      "fullAddress": "",              // School Address:
      "city": "",                     // City:
      "state": "",                    // State:
      "zip": ""                       // Zip:
    },
    "datesAttended": {
      "from": "",                     // Dates Attended: (start date)
      "to": ""                        // to (end date)
    },
    "reasonForLeaving": ""            // Reason for Leaving:
  },
  "emergencyContactInformation": {
    "fullName": "",                   // Emergency Contact Name:
    "relationshipToStudent": "",      // Relationship to Student:
    "contactNumber": "",              // Contact Number:
    "alternateContactNumber": ""      // Alternate Contact Number:
  },
  "healthInformation": {
    "hasAllergiesOrConditions": false,// Does the student have any allergies or medical conditions? [] Yes [] No
    "conditionsDetails": "",          // If yes, please specify:
    "physicianNameAndContact": ""     // Primary Care Physician Name and Contact:
  },
  "additionalInformation": {
    "specialEducationalNeeds": "",    // Special Educational Needs:
    "interestsHobbies": "",           // Interests/Hobbies:
    "languagesSpokenAtHome": ""       // Languages Spoken at Home:
  },
  "declaration": {
    "parentGuardianSignature": "",    // Parent/Guardian Signature:
    "date": ""                        // Date:
  },
  "officeUseOnly": {
    "receivedBy": "",                 // Received by:
    "date": "",                       // Date:
    "applicationNumber": ""           // Application Number:
  }
}
`

const devanagariPrompt = `
You are given the scanned image of a "Data Collection form for Devanagari OCR and Form Processing Research" filled out in Hindi.

Extract all data points below and return one valid JSON object only "{responseText}", exactly matching this schema.
If a checkbox is ticked, use true; if not ticked or absent, use false.
If a text entry is blank, return an empty string "".
No additional keys, no extra text, comments, Markdown, or code fences.
also make sure that all the Hindi text values are returned in english script.

{
  "studentDetails": {
    "rollNumber": "",                   // रोल नंबर (Roll Number)
    "candidateName": {
      "first": "",                      // उम्मीदवार का नाम लिखो: पहला (Candidate's Name: First)
      "middle": "",                     // मध्य (Middle)
      "last": ""                        // अंतिम (Last)
    },
    "fatherName": {
      "first": "",                      // पिता का नाम लिखो: पहला (Father's Name: First)
      "middle": "",                     // मध्य (Middle)
      "last": ""                        // अंतिम (Last)
    },
    "motherName": {
      "first": "",                      // माता का नाम लिखो: पहला (Mother's Name: First)
      "middle": "",                     // मध्य (Middle)
      "last": ""                        // अंतिम (Last)
    },
    "dateOfBirth": {
      "day": "",                        // जन्म तिथि (dd)
      "month": "",                      // जन्म तिथि (mm)
      "year": ""                        // जन्म तिथि (yyyy)
    },
    "contact": {
      "telephoneNumber": ""             // टेलीफोन न (Telephone No.)
    }
  },
  "addressDetails": {
    "houseNumber": "",                  // घर क न (House Number)
    "streetLocalitySociety": "",        // गली/चर्होलो/सोसाइटी (Street/Locality/Society)
    "city": "",                         // शहर (City)
    "state": "",                        // राज्य (स्टेट) (State)
    "pincode": ""                       // पिनकोड (Pincode)
  },
  "academicDetails": {
    "class": "",                        // कक्षा (Class)
    "department": "",                   // विभाग (Department)
    "subject": {
      "male": false,                    // विष: पुरुष (Subject: Male checkbox)
      "female": false                   // विष: स्त्री (Subject: Female checkbox)
    }
  },
  "signature": ""                       // हस्ताक्षर (Signature)
}
`
