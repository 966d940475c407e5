/*
   Copyright 2025 The DIRPX Authors.

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

package apis

// MetadataPrefix namespaces every per-file option key.
const MetadataPrefix = "build_metadata.EmbeddedResource."

// Per-file option keys.
const (
	KeyTargetPath             = MetadataPrefix + "TargetPath"
	KeyCustomToolNamespace    = MetadataPrefix + "CustomToolNamespace"
	KeyPublicClass            = MetadataPrefix + "PublicClass"
	KeyStaticClass            = MetadataPrefix + "StaticClass"
	KeyStaticMembers          = MetadataPrefix + "StaticMembers"
	KeyPartialClass           = MetadataPrefix + "PartialClass"
	KeyInnerClassVisibility   = MetadataPrefix + "InnerClassVisibility"
	KeyInnerClassName         = MetadataPrefix + "InnerClassName"
	KeyInnerClassInstanceName = MetadataPrefix + "InnerClassInstanceName"
)

// PropertyPrefix namespaces project-level option keys.
const PropertyPrefix = "build_property."

// GeneratorPropertyPrefix namespaces the project-level generator defaults.
const GeneratorPropertyPrefix = PropertyPrefix + "ResXFileCodeGenerator_"

// Project-level option keys.
const (
	KeyRootNamespace   = PropertyPrefix + "RootNamespace"
	KeyProjectFullPath = PropertyPrefix + "MSBuildProjectFullPath"

	KeyDefaultPublicClass            = GeneratorPropertyPrefix + "PublicClass"
	KeyDefaultStaticClass            = GeneratorPropertyPrefix + "StaticClass"
	KeyDefaultStaticMembers          = GeneratorPropertyPrefix + "StaticMembers"
	KeyDefaultPartialClass           = GeneratorPropertyPrefix + "PartialClass"
	KeyDefaultInnerClassVisibility   = GeneratorPropertyPrefix + "InnerClassVisibility"
	KeyDefaultInnerClassName         = GeneratorPropertyPrefix + "InnerClassName"
	KeyDefaultInnerClassInstanceName = GeneratorPropertyPrefix + "InnerClassInstanceName"
	KeyNullForgivingOperators        = GeneratorPropertyPrefix + "NullForgivingOperators"
)
